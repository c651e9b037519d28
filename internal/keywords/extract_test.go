package keywords

import (
	"reflect"
	"testing"
)

func TestExtractN(t *testing.T) {
	type args struct {
		text string
		max  int
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{
			name: "frequency then first occurrence",
			args: args{
				text: "The the the dog ran and the dog barked",
				max:  5,
			},
			want: []string{"dog", "ran", "barked"},
		},
		{
			name: "empty",
			args: args{
				text: "",
				max:  20,
			},
			want: []string{},
		},
		{
			name: "only stop words and short tokens",
			args: args{
				text: "the and of a an it is go js",
				max:  20,
			},
			want: []string{},
		},
		{
			name: "punctuation stripped, hyphen kept",
			args: args{
				text: "Data-driven, data-driven! Python; python's",
				max:  20,
			},
			want: []string{"data-driven", "python"},
		},
		{
			name: "truncated",
			args: args{
				text: "alpha beta gamma delta",
				max:  2,
			},
			want: []string{"alpha", "beta"},
		},
		{
			name: "digits are tokens",
			args: args{
				text: "2024 volunteers 2024",
				max:  20,
			},
			want: []string{"2024", "volunteers"},
		},
		{
			name: "non ascii letters split tokens",
			args: args{
				text: "Café tutoring",
				max:  20,
			},
			want: []string{"caf", "tutoring"},
		},
		{
			name: "zero max",
			args: args{
				text: "alpha beta",
				max:  0,
			},
			want: []string{},
		},
		{
			name: "whitespace runs",
			args: args{
				text: "  garden\t\tgarden\n\nweeding  ",
				max:  20,
			},
			want: []string{"garden", "weeding"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractN(tt.args.text, tt.args.max); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractN() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractBounds(t *testing.T) {
	inputs := []string{
		"Help us teach coding to kids at the community center every weekend",
		"We need volunteers with graphic design, photography and social media skills for our annual fundraising gala and auction",
		"a b c d e f g h i j k l m n o p q r s t u v w x y z",
		"one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen seventeen eighteen nineteen twenty twentyone twentytwo",
	}
	for _, text := range inputs {
		for _, max := range []int{1, 3, DefaultLimit} {
			got := ExtractN(text, max)
			if len(got) > max {
				t.Errorf("ExtractN(%q, %d) returned %d tokens", text, max, len(got))
			}
			for _, token := range got {
				if len(token) < minTokenLength {
					t.Errorf("token %q is shorter than %d", token, minTokenLength)
				}
				if IsStopWord(token) {
					t.Errorf("token %q is a stop word", token)
				}
			}
		}
	}
}

func TestExtractDefaultLimit(t *testing.T) {
	text := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen seventeen eighteen nineteen twenty twentyone twentytwo"
	got := Extract(text)
	if len(got) != DefaultLimit {
		t.Fatalf("Extract() returned %d tokens, want %d", len(got), DefaultLimit)
	}
	if got[0] != "one" || got[DefaultLimit-1] != "twenty" {
		t.Errorf("Extract() = %v", got)
	}
}

func TestMatchText(t *testing.T) {
	got := MatchText("Tutor", "Teach math", "Education", []string{"math", "patience"})
	want := "Teach math math patience Education Tutor"
	if got != want {
		t.Errorf("MatchText() = %q, want %q", got, want)
	}
}
