package tuitest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1;38;2;245;158;11mLog in\x1b[0m   \n  \x1b[32m✔\x1b[0m email  \n\n"
	assert.Equal(t, "Log in\n  ✔ email", StripANSI(in))
}

func TestLines(t *testing.T) {
	in := "\n\x1b[31mone\x1b[0m\n   \ntwo\n"
	assert.Equal(t, []string{"one", "two"}, Lines(in))
}
