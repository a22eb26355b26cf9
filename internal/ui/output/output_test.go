package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/ktmlm/RUC/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.Equal(t, termenv.Ascii, output.ColorProfile())
	assert.Equal(t, termenv.Ascii, output.ColorProfileANSI())
}

func TestNew_PlainStringsUnderNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf)

	styled := out.String("hello").Foreground(termenv.ANSIRed)
	assert.Equal(t, "hello", styled.String())
}

func TestIsTerminal_NonFileWriter(t *testing.T) {
	assert.False(t, output.IsTerminal(&bytes.Buffer{}))
}
