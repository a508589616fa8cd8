package output_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/reify/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestColorProfileFor(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.Equal(t, termenv.Ascii, output.ColorProfileFor(&buf), "buffers are never terminals")

	f, err := os.CreateTemp(t.TempDir(), "out")
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, termenv.Ascii, output.ColorProfileFor(f), "regular files are never terminals")
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, output.IsTerminal(&buf))
	assert.False(t, output.IsTerminal(nil))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNewWithProfile_Nil(t *testing.T) {
	out := output.NewWithProfile(nil, func() termenv.Profile { return termenv.Ascii })
	assert.NotNil(t, out)
}

func TestNewWithProfile_Ascii(t *testing.T) {
	var buf bytes.Buffer
	out := output.NewWithProfile(&buf, func() termenv.Profile { return termenv.Ascii })

	_, _ = out.WriteString(out.String("plain").Bold().String())
	assert.Equal(t, "plain", buf.String())
}

func TestStdoutFrom(t *testing.T) {
	assert.Equal(t, os.Stdout, output.StdoutFrom(context.Background()))

	var buf bytes.Buffer
	ctx := output.WithStdout(context.Background(), &buf)
	assert.Same(t, &buf, output.StdoutFrom(ctx))
}
