package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Rules    bool
	Comments bool
	Draw     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Rules = boolEnv("MULTIARCHI_DEBUG_RULES")
	d.Comments = boolEnv("MULTIARCHI_DEBUG_COMMENTS")
	d.Draw = boolEnv("MULTIARCHI_DEBUG_DRAW")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Rules() bool {
	return d.Rules
}
func Comments() bool {
	return d.Comments
}
func Draw() bool {
	return d.Draw
}
