// Package keyword appends a canned support message to replies when the
// user's text matches a known distress vocabulary, on a fraction of matching
// messages rather than every one.
package keyword

import (
	"math/rand/v2"
	"strings"
)

// DefaultThreshold is the probability that a matching message triggers an
// injection.
const DefaultThreshold = 0.4

// Category pairs a trigger vocabulary with the payload appended when any
// trigger appears in the user's text.
type Category struct {
	Name     string
	Triggers []string
	Payload  string
}

// DefaultCategories returns the built-in categories in priority order.
// Earlier categories win when a message matches more than one.
func DefaultCategories() []Category {
	return []Category{
		{
			Name: "mood_distress",
			Triggers: []string{
				"痛苦", "傷心", "難過", "撐不下去", "扛不住", "emo", "depressed", "sad",
				"心情糟", "煩", "心情差", "心情不好", "憂鬱", "煎熬", "累", "放棄",
			},
			Payload: "你最近的心情似乎不是很好，有人給你寫了封信喔：      https://drive.google.com/file/d/14FZE5pJFe7oJ6m48_4M5ETcJ_DCa6BW5/view?usp=sharing",
		},
		{
			Name: "academic_stress",
			Triggers: []string{
				"考不好", "考差", "考爛", "成績差", "成績爛", "分數低", "功課多", "報告多",
				"課好難", "課好多", "功課好多", "作業好多", "報告好多", "考試好多",
				"期中地獄", "期末地獄",
			},
			Payload: "我知道學校的各種事都蠻煩人的，看起來某人也有同感：https://drive.google.com/file/d/1Acw6cnb1guGkanS7THHGvfvK-gF5dSK7/view?usp=sharing",
		},
		{
			Name:     "relationship",
			Triggers: []string{"分手", "跟男友吵架", "跟女友吵架", "失戀"},
			Payload:  "你好像有一些困擾喔！有人給你寫了封信喔：https://drive.google.com/file/d/1xt4YTtofPsJLx5MgaZTWhH83OycPoA_A/view?usp=sharing",
		},
		{
			Name: "financial",
			Triggers: []string{
				"沒錢", "月底了", "薪水很低", "學貸還不出來", "學費", "生活費好高",
				"房租好高", "存款好少", "經濟壓力大",
			},
			Payload: "你好像有一些困擾喔！有人給你寫了封信喔：https://drive.google.com/file/d/1mAXgKIatF0yg69PgsXWDNDX6nmghVAih/view?usp=share_link",
		},
	}
}

// Injector decides whether a canned payload should be appended to a reply.
type Injector struct {
	categories []Category
	threshold  float64
	randFloat  func() float64
}

// Option configures an Injector.
type Option func(*Injector)

// WithRand overrides the probability source, mainly for tests.
func WithRand(f func() float64) Option {
	return func(i *Injector) {
		i.randFloat = f
	}
}

// WithThreshold overrides the injection probability.
func WithThreshold(threshold float64) Option {
	return func(i *Injector) {
		i.threshold = threshold
	}
}

// NewInjector creates an injector over the given categories.
func NewInjector(categories []Category, opts ...Option) *Injector {
	i := &Injector{
		categories: categories,
		threshold:  DefaultThreshold,
		randFloat:  rand.Float64,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Inject returns the payload to append to the reply for text, or the empty
// string. The draw happens before matching, so the injection rate is
// independent of which category matched.
func (i *Injector) Inject(text string) string {
	if i.randFloat() > i.threshold {
		return ""
	}
	for _, cat := range i.categories {
		for _, trigger := range cat.Triggers {
			if strings.Contains(text, trigger) {
				return cat.Payload
			}
		}
	}
	return ""
}
