package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func text(s string) Inline   { return Inline{Kind: InlineText, Text: s} }
func strong(s string) Inline { return Inline{Kind: InlineStrong, Text: s} }
func em(s string) Inline     { return Inline{Kind: InlineEmphasis, Text: s} }

func TestParseMarkdown(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Blocks
	}{
		{
			name: "Empty",
			src:  "",
			want: nil,
		},
		{
			name: "HeadingsAndParagraphs",
			src:  "Intro line\n\n## Section\nBody one\nBody two\n\n### Sub\n\nTail",
			want: Blocks{
				{Kind: BlockParagraph, Inlines: []Inline{text("Intro line")}},
				{Kind: BlockHeading2, Inlines: []Inline{text("Section")}},
				{Kind: BlockParagraph, Inlines: []Inline{text("Body one\nBody two")}},
				{Kind: BlockHeading3, Inlines: []Inline{text("Sub")}},
				{Kind: BlockParagraph, Inlines: []Inline{text("Tail")}},
			},
		},
		{
			name: "InlineEmphasis",
			src:  "A **bold** and *italic* word",
			want: Blocks{
				{Kind: BlockParagraph, Inlines: []Inline{
					text("A "), strong("bold"), text(" and "), em("italic"), text(" word"),
				}},
			},
		},
		{
			name: "EmphasisInHeading",
			src:  "## The **real** numbers",
			want: Blocks{
				{Kind: BlockHeading2, Inlines: []Inline{text("The "), strong("real"), text(" numbers")}},
			},
		},
		{
			name: "UnknownSyntaxIsLiteral",
			src:  "# Title\n#### Deep\n##NoSpace\n- item [link](/contact.html)",
			want: Blocks{
				{Kind: BlockParagraph, Inlines: []Inline{text("# Title\n#### Deep\n##NoSpace\n- item [link](/contact.html)")}},
			},
		},
		{
			name: "UnmatchedMarkersAreLiteral",
			src:  "2 * 3 and ** alone",
			want: Blocks{
				{Kind: BlockParagraph, Inlines: []Inline{text("2 "), em(" 3 and "), text("* alone")}},
			},
		},
		{
			name: "EmptySpansAreLiteral",
			src:  "**** only",
			want: Blocks{
				{Kind: BlockParagraph, Inlines: []Inline{text("**** only")}},
			},
		},
		{
			name: "LoneDoubleMarker",
			src:  "a ** b",
			want: Blocks{
				{Kind: BlockParagraph, Inlines: []Inline{text("a ** b")}},
			},
		},
		{
			name: "SpansDoNotCrossLines",
			src:  "*open\nclose*",
			want: Blocks{
				{Kind: BlockParagraph, Inlines: []Inline{text("*open\nclose*")}},
			},
		},
		{
			name: "WindowsLineEndings",
			src:  "## Head\r\n\r\nBody\r\n",
			want: Blocks{
				{Kind: BlockHeading2, Inlines: []Inline{text("Head")}},
				{Kind: BlockParagraph, Inlines: []Inline{text("Body")}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMarkdown(tt.src))
		})
	}
}

func TestBlocks_HTML(t *testing.T) {
	blocks := ParseMarkdown("## Why <b>\n\nUse **MFA** & *backups*")

	assert.Equal(t,
		"<h2>Why &lt;b&gt;</h2>\n<p>Use <strong>MFA</strong> &amp; <em>backups</em></p>",
		blocks.HTML(),
	)
}

func TestBlock_Text(t *testing.T) {
	blocks := ParseMarkdown("Use **MFA** now")

	assert.Equal(t, "Use MFA now", blocks[0].Text())
}
