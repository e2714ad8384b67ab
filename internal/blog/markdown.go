package blog

import (
	"html"
	"strings"
)

type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading2
	BlockHeading3
)

func (k BlockKind) String() string {
	switch k {
	case BlockHeading2:
		return "h2"
	case BlockHeading3:
		return "h3"
	default:
		return "p"
	}
}

type InlineKind int

const (
	InlineText InlineKind = iota
	InlineStrong
	InlineEmphasis
)

func (k InlineKind) String() string {
	switch k {
	case InlineStrong:
		return "strong"
	case InlineEmphasis:
		return "em"
	default:
		return "text"
	}
}

type Inline struct {
	Kind InlineKind
	Text string
}

type Block struct {
	Kind    BlockKind
	Inlines []Inline
}

type Blocks []Block

// ParseMarkdown converts the post markup into blocks. Supported: "## " and "### " headings,
// blank-line separated paragraphs, **strong** and *emphasis*. Anything else stays literal text.
func ParseMarkdown(src string) Blocks {
	var (
		blocks    Blocks
		paragraph []string
	)

	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		blocks = append(blocks, Block{Kind: BlockParagraph, Inlines: parseInlines(strings.Join(paragraph, "\n"))})
		paragraph = nil
	}

	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSuffix(line, "\r")

		switch {
		case strings.TrimSpace(line) == "":
			flush()
		case strings.HasPrefix(line, "### "):
			flush()
			blocks = append(blocks, heading(BlockHeading3, line[len("### "):]))
		case strings.HasPrefix(line, "## "):
			flush()
			blocks = append(blocks, heading(BlockHeading2, line[len("## "):]))
		default:
			paragraph = append(paragraph, line)
		}
	}
	flush()

	return blocks
}

func heading(kind BlockKind, text string) Block {
	return Block{Kind: kind, Inlines: parseInlines(strings.TrimSpace(text))}
}

// parseInlines scans for **strong** and *emphasis* spans. Spans never cross a line break
// and never nest; markers without a closing partner are kept as text.
func parseInlines(s string) []Inline {
	var (
		result []Inline
		text   strings.Builder
	)

	emit := func(kind InlineKind, value string) {
		if text.Len() > 0 {
			result = append(result, Inline{Kind: InlineText, Text: text.String()})
			text.Reset()
		}
		result = append(result, Inline{Kind: kind, Text: value})
	}

	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], "**") {
			if end := closingMarker(s[i+2:], "**"); end > 0 {
				emit(InlineStrong, s[i+2:i+2+end])
				i += 2 + end + 2
				continue
			}
		}

		if s[i] == '*' {
			if end := closingMarker(s[i+1:], "*"); end > 0 {
				emit(InlineEmphasis, s[i+1:i+1+end])
				i += 1 + end + 1
				continue
			}
		}

		text.WriteByte(s[i])
		i++
	}

	if text.Len() > 0 {
		result = append(result, Inline{Kind: InlineText, Text: text.String()})
	}

	return result
}

// closingMarker returns the offset of marker in s, or -1 when it is missing or a line break comes first.
func closingMarker(s, marker string) int {
	end := strings.Index(s, marker)
	if end < 0 || strings.Contains(s[:end], "\n") {
		return -1
	}

	return end
}

// Text returns the block content without markup.
func (b Block) Text() string {
	var sb strings.Builder
	for _, in := range b.Inlines {
		sb.WriteString(in.Text)
	}

	return sb.String()
}

// HTML renders the blocks with all text escaped.
func (bb Blocks) HTML() string {
	var sb strings.Builder
	for i, b := range bb {
		if i > 0 {
			sb.WriteByte('\n')
		}

		tag := b.Kind.String()
		sb.WriteString("<" + tag + ">")
		for _, in := range b.Inlines {
			switch in.Kind {
			case InlineStrong, InlineEmphasis:
				sb.WriteString("<" + in.Kind.String() + ">" + html.EscapeString(in.Text) + "</" + in.Kind.String() + ">")
			default:
				sb.WriteString(html.EscapeString(in.Text))
			}
		}
		sb.WriteString("</" + tag + ">")
	}

	return sb.String()
}
