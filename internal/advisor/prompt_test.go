package advisor

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt(validRequest())

	for _, want := range []string{
		"Daily budget limit: 50.00",
		"Category: food, Amount: 30.00, Description: groceries",
		"Category: transport, Amount: 25.00, Description: taxi",
		"spendingAnalysis",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q\n%s", want, p)
		}
	}
}

func TestStripMarkdownFence(t *testing.T) {
	tests := []struct{ in, want string }{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripMarkdownFence(tt.in); got != tt.want {
			t.Errorf("stripMarkdownFence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
