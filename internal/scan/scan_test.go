package scan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{
			name: "single tag",
			in:   "<a>",
			want: []int{0, 3},
		},
		{
			name: "tag content tag",
			in:   "<a>hi</a>",
			want: []int{0, 3, 5, 9},
		},
		{
			name: "adjacent tags",
			in:   "<a><b/></a>",
			want: []int{0, 3, 7, 11},
		},
		{
			name: "leading content",
			in:   "hi<a>",
			want: []int{0, 2, 5},
		},
		{
			name: "trailing content",
			in:   "<a>hi",
			want: []int{0, 3, 5},
		},
		{
			name: "content only",
			in:   "hello",
			want: []int{0, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Boundaries([]byte(tt.in))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Boundaries(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestRemoveGaps(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{
			name: "whitespace between tags",
			in:   "<a>   <b>",
			want: []int{0, 6, 9},
		},
		{
			name: "no whitespace",
			in:   "<a>hi</a>",
			want: []int{0, 3, 5, 9},
		},
		{
			name: "leading whitespace",
			in:   "  <a>",
			want: []int{2, 5},
		},
		{
			name: "content with internal spaces kept",
			in:   "<a>h i</a>",
			want: []int{0, 3, 6, 10},
		},
		{
			name: "newlines and tabs",
			in:   "<a>\n\t<b>",
			want: []int{0, 5, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(tt.in)
			got := RemoveGaps(data, Boundaries(data))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("RemoveGaps(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestCollapseComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "plain comment",
			in:   "<a><!-- note --></a>",
			want: []string{"<a>", "<!-- note -->", "</a>"},
		},
		{
			name: "comment containing tags",
			in:   "<a><!--<b></b> --></a>",
			want: []string{"<a>", "<!--<b></b> -->", "</a>"},
		},
		{
			name: "leading comment",
			in:   "<!-- x --><a></a>",
			want: []string{"<!-- x -->", "<a>", "</a>"},
		},
		{
			name: "no comment",
			in:   "<a>hi</a>",
			want: []string{"<a>", "hi", "</a>"},
		},
		{
			name: "empty comment",
			in:   "<a><!----></a>",
			want: []string{"<a>", "<!---->", "</a>"},
		},
		{
			name: "closer overlaps opener",
			in:   "<a><!--></a>",
			want: []string{"<a>", "<!-->", "</a>"},
		},
		{
			name: "closer shares one dash with opener",
			in:   "<a><!---></a>",
			want: []string{"<a>", "<!--->", "</a>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(tt.in)
			bounds, err := CollapseComments(data, RemoveGaps(data, Boundaries(data)))
			if err != nil {
				t.Fatalf("CollapseComments(%q) error: %v", tt.in, err)
			}
			var got []string
			for i := 0; i+1 < len(bounds); i++ {
				got = append(got, string(data[bounds[i]:bounds[i+1]]))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollapseCommentsUnterminated(t *testing.T) {
	data := []byte("<a><!-- never closed </a>")
	_, err := CollapseComments(data, Boundaries(data))
	if err != ErrUnterminatedComment {
		t.Fatalf("CollapseComments error = %v, want %v", err, ErrUnterminatedComment)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Kind
	}{
		{name: "open", in: "<a>", want: KindOpen},
		{name: "open with attrs", in: `<a id="1">`, want: KindOpen},
		{name: "close", in: "</a>", want: KindClose},
		{name: "self closing", in: "<a/>", want: KindOpen | KindClose},
		{name: "self closing with space", in: "<a />", want: KindOpen | KindClose},
		{name: "content", in: "hello", want: KindContent},
		{name: "comment", in: "<!-- c -->", want: KindComment},
		{name: "unterminated tag", in: "<a", want: KindError},
		{name: "lone angle", in: "<", want: KindError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(tt.in)
			if got := Classify(data, 0, len(data)); got != tt.want {
				t.Fatalf("Classify(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "<item>", want: "item"},
		{name: "with attrs", in: `<item id="1">`, want: "item"},
		{name: "self closing", in: "<item/>", want: "item"},
		{name: "namespaced", in: `<nm:topping nm:id="5007">`, want: "nm:topping"},
		{name: "closing tag has no name", in: "</item>", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(tt.in)
			if got := Name(data, 0, len(data)); got != tt.want {
				t.Fatalf("Name(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAttributes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Attr
	}{
		{
			name: "none",
			in:   "<a>",
			want: nil,
		},
		{
			name: "single",
			in:   `<a id="1">`,
			want: []Attr{{Key: "id", Value: "1"}},
		},
		{
			name: "multiple",
			in:   `<item id="0001" type="donut">`,
			want: []Attr{{Key: "id", Value: "0001"}, {Key: "type", Value: "donut"}},
		},
		{
			name: "single quotes",
			in:   `<a id='1'>`,
			want: []Attr{{Key: "id", Value: "1"}},
		},
		{
			name: "apostrophe inside double quotes",
			in:   `<a note="it's fine">`,
			want: []Attr{{Key: "note", Value: "it's fine"}},
		},
		{
			name: "namespaced key",
			in:   `<nm:topping nm:id="5007">`,
			want: []Attr{{Key: "nm:id", Value: "5007"}},
		},
		{
			name: "self closing",
			in:   `<topping id="5002"/>`,
			want: []Attr{{Key: "id", Value: "5002"}},
		},
		{
			name: "duplicate keys kept in order",
			in:   `<a x="1" x="2">`,
			want: []Attr{{Key: "x", Value: "1"}, {Key: "x", Value: "2"}},
		},
		{
			name: "declaration",
			in:   `<?xml version="1.0" encoding="UTF-8"?>`,
			want: []Attr{{Key: "version", Value: "1.0"}, {Key: "encoding", Value: "UTF-8"}},
		},
		{
			name: "empty value",
			in:   `<a id="">`,
			want: []Attr{{Key: "id", Value: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(tt.in)
			got := Attributes(data, 0, len(data))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Attributes(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}
