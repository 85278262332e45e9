package annotation

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{
			name:  "class representation",
			input: "<class '__main__.MyClass'>",
			want:  FormatStandardRepr,
		},
		{
			name:  "builtin class representation",
			input: "<class 'int'>",
			want:  FormatStandardRepr,
		},
		{
			name:  "function representation",
			input: "<function 'func_name' at 0x7f2b3c>",
			want:  FormatStandardRepr,
		},
		{
			name:  "any literal",
			input: "Any",
			want:  FormatLiteral,
		},
		{
			name:  "none literal",
			input: "None",
			want:  FormatLiteral,
		},
		{
			name:  "literal with surrounding text is not a literal",
			input: "None ",
			want:  FormatBareName,
		},
		{
			name:  "union construct",
			input: "Union[int, str]",
			want:  FormatConstruct,
		},
		{
			name:  "optional construct",
			input: "Optional[int]",
			want:  FormatConstruct,
		},
		{
			name:  "typing qualified construct",
			input: "typing.List[int]",
			want:  FormatConstruct,
		},
		{
			name:  "construct indicator anywhere in string",
			input: "Wrapped[Optional[int]]",
			want:  FormatConstruct,
		},
		{
			name:  "bare name containing reserved substring",
			input: "MyTypeVar",
			want:  FormatConstruct,
		},
		{
			name:  "dotted path",
			input: "np.ndarray",
			want:  FormatDottedPath,
		},
		{
			name:  "deep dotted path",
			input: "matplotlib.pyplot.Figure",
			want:  FormatDottedPath,
		},
		{
			name:  "bare name",
			input: "UnknownName",
			want:  FormatBareName,
		},
		{
			name:  "empty string",
			input: "",
			want:  FormatBareName,
		},
		{
			name:  "angle brackets without space or quote",
			input: "<int>",
			want:  FormatBareName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	t.Run("standard repr wins over construct indicator", func(t *testing.T) {
		// The quoted path contains "typing." but the angle bracket form
		// classifies first.
		got := Classify("<class 'typing.Generic'>")
		if got != FormatStandardRepr {
			t.Errorf("expected standard repr, got %v", got)
		}
	})

	t.Run("construct wins over dotted path", func(t *testing.T) {
		got := Classify("typing.List[int]")
		if got != FormatConstruct {
			t.Errorf("expected construct, got %v", got)
		}
	})
}
