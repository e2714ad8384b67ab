package blog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SeedPosts returns the sample posts used to populate an empty store.
func SeedPosts() []Post {
	return []Post{
		{
			ID:      1,
			Title:   "The Hidden Cost of Weak Passwords: Why Your Business Can't Afford to Wait",
			Excerpt: "Password breaches cost small businesses millions every year. Learn why password security is your first line of defense and how to implement enterprise-grade protection without breaking the bank.",
			Content: `Password security isn't just about complex combinations of letters and numbers anymore. Weak passwords are the equivalent of leaving your front door wide open.

## The Real Numbers Behind Password Breaches

Most hacking-related breaches involve **weak or stolen passwords**. For small businesses and nonprofits, that is an existential threat.

### What a Breach Costs

Recovery takes months, customers leave, and insurers ask hard questions about your controls.

## The Bottom Line

Password security is an ongoing practice, not a one-time fix. It is one of the most cost-effective investments a small organization can make.

*Ready to secure your organization's passwords? Contact us for a free consultation.*`,
			Category: "security-tips",
			Tags:     []string{"passwords", "authentication", "small-business", "security-tips"},
			Author:   DefaultAuthor,
			Date:     time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			ReadTime: "8 min read",
			Featured: true,
		},
		{
			ID:      2,
			Title:   "Social Media Security: Protecting Your Brand When Your Identity Becomes Your Business",
			Excerpt: "For solopreneurs and small businesses, a compromised social media account can destroy years of brand building overnight. Here's how to protect your digital identity.",
			Content: `Your social media presence isn't just marketing. It's business infrastructure, and attackers know it.

## How Accounts Get Taken Over

Reused passwords, SIM swapping and **convincing phishing messages** are behind most takeovers.

## Taking Action Today

Turn on app-based two-factor authentication, review connected apps and keep recovery details current.

*Need help securing your social media presence? Schedule a free consultation.*`,
			Category: "security-tips",
			Tags:     []string{"social-media", "brand-protection", "solopreneur", "identity-theft"},
			Author:   DefaultAuthor,
			Date:     time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			ReadTime: "12 min read",
			Featured: false,
		},
		{
			ID:      3,
			Title:   "2025 Threat Landscape: Why Small Businesses Are Now the Primary Target",
			Excerpt: "Large enterprises have hardened their defenses, making small businesses and nonprofits the path of least resistance. Here's what you need to know.",
			Content: `The cybersecurity landscape has shifted. Small businesses and nonprofits have become the new *soft targets* for cybercriminals.

## The Numbers Don't Lie

Ransomware crews and business email compromise gangs now favor organizations **without a dedicated security team**.

## The Bottom Line

Every small business is a potential target. You don't need an enterprise budget to build effective defenses, but you need to start now.

*Concerned about your security posture? Contact us for a free consultation.*`,
			Category: "threat-intelligence",
			Tags:     []string{"threat-landscape", "2025-trends", "small-business", "cybercrime"},
			Author:   DefaultAuthor,
			Date:     time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
			ReadTime: "15 min read",
			Featured: true,
		},
	}
}

type seedFile struct {
	Posts []seedPost `yaml:"posts"`
}

type seedPost struct {
	ID       int64     `yaml:"id"`
	Title    string    `yaml:"title"`
	Excerpt  string    `yaml:"excerpt"`
	Content  string    `yaml:"content"`
	Category string    `yaml:"category"`
	Tags     []string  `yaml:"tags"`
	Author   string    `yaml:"author"`
	Date     time.Time `yaml:"date"`
	ReadTime string    `yaml:"readTime"`
	Featured bool      `yaml:"featured"`
}

// LoadSeedFile reads seed posts from a YAML file with a top-level "posts" list.
// Missing ids are numbered from 1 in file order and missing read times are estimated.
// Missing authors stay empty; the store fills them with its configured author.
func LoadSeedFile(path string) ([]Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	posts := make([]Post, len(file.Posts))
	seen := make(map[int64]struct{}, len(file.Posts))
	for i, sp := range file.Posts {
		p := Post{
			ID:       sp.ID,
			Title:    sp.Title,
			Excerpt:  sp.Excerpt,
			Content:  sp.Content,
			Category: sp.Category,
			Tags:     sp.Tags,
			Author:   sp.Author,
			Date:     sp.Date,
			ReadTime: sp.ReadTime,
			Featured: sp.Featured,
		}
		if p.ID == 0 {
			p.ID = int64(i + 1)
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("seed file %s: duplicate post id %d", path, p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.ReadTime == "" {
			p.ReadTime = EstimateReadTime(p.Content)
		}
		posts[i] = p
	}

	return posts, nil
}
