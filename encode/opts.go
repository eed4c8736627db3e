package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the number of spaces per nesting level. Values below
// 2 are raised to 2 so that sequence markers line up.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		if n < 2 {
			n = 2
		}
		es.indent = n
	}
}

// EncodeDocumentStart controls whether EncodeDocuments writes a "---" line
// before each document. It is on by default.
func EncodeDocumentStart(v bool) EncodeOption {
	return func(es *EncState) { es.docStart = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
