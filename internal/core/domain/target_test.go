package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ktmlm/RUC/internal/core/domain"
)

func TestCommand_String(t *testing.T) {
	tests := []struct {
		name string
		cmd  domain.Command
		want string
	}{
		{"program with arguments", domain.Command{"go", "build", "./..."}, "go build ./..."},
		{"bare program", domain.Command{"gofmt"}, "gofmt"},
		{"empty", domain.Command{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}
