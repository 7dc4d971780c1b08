package equipment

import "regexp"

// FormattedAttribute 是整理后用于展示的属性词条
type FormattedAttribute struct {
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// specialEffectType 是特效词条的属性类型，这类词条不展示具体数值
const specialEffectType = "atSkillEventHandler"

var (
	// 去掉 "提高..." 的后半句和结尾的数字
	boostSuffixRe = regexp.MustCompile(`提高.*$`)
	digitSuffixRe = regexp.MustCompile(`[0-9]+$`)
	// 去掉 "等级"/"值" 这类通用后缀
	genericSuffixRe = regexp.MustCompile(`(等级|值)$`)
	// 去掉 "外功"/"内功" 前缀
	qualifierPrefixRe = regexp.MustCompile(`^(外功|内功)`)
)

// normalizeColor 把白色归一化为空串，交给前端用主题色渲染
func normalizeColor(color string) string {
	switch color {
	case "", "#ffffff", "#FFFFFF", "white", "White":
		return ""
	default:
		return color
	}
}

// FormatAttributes 把装备的原始属性词条整理为简短的中文标签。
// 规则与录入界面的展示保持一致，便于对账本里的文案做断言：
//  1. 特效类词条固定渲染为 "特效"；
//  2. 优先用AttributeTypes里的类型名；
//  3. 否则从label里剥掉 "提高..."/数字尾缀；
//  4. 去掉 等级/值 后缀和 外功/内功 前缀；
//  5. 会心效果→会效，治疗成效→治疗。
func FormatAttributes(e Equipment) []FormattedAttribute {
	attrs := make([]FormattedAttribute, 0, len(e.Attributes))

	for _, attr := range e.Attributes {
		if attr.Type == specialEffectType {
			attrs = append(attrs, FormattedAttribute{
				Label: "特效",
				Color: "#ffcc00",
			})
			continue
		}

		name := ""
		if e.AttributeTypes != nil {
			name = e.AttributeTypes[attr.Type]
		}
		if name == "" && attr.Label != "" {
			name = boostSuffixRe.ReplaceAllString(attr.Label, "")
			name = digitSuffixRe.ReplaceAllString(name, "")
		}
		if name == "" {
			continue
		}

		name = genericSuffixRe.ReplaceAllString(name, "")
		name = qualifierPrefixRe.ReplaceAllString(name, "")

		switch name {
		case "会心效果":
			name = "会效"
		case "治疗成效":
			name = "治疗"
		}

		attrs = append(attrs, FormattedAttribute{
			Label: name,
			Color: normalizeColor(attr.Color),
		})
	}

	return attrs
}
