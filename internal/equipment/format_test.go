package equipment

import "testing"

func format(attrs []Attribute, types StringMap) []FormattedAttribute {
	return FormatAttributes(Equipment{Attributes: attrs, AttributeTypes: types})
}

func TestFormatAttributesSpecialEffect(t *testing.T) {
	got := format([]Attribute{
		{Type: "atSkillEventHandler", Label: "随机触发某种效果"},
	}, nil)

	if len(got) != 1 || got[0].Label != "特效" || got[0].Color != "#ffcc00" {
		t.Errorf("特效词条应固定渲染为[特效]: %+v", got)
	}
}

func TestFormatAttributesTypeNamePreferred(t *testing.T) {
	got := format([]Attribute{
		{Type: "atAgilityBase", Label: "身法提高120"},
	}, StringMap{"atAgilityBase": "身法"})

	if len(got) != 1 || got[0].Label != "身法" {
		t.Errorf("应优先用AttributeTypes里的类型名: %+v", got)
	}
}

func TestFormatAttributesLabelStripping(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"会心等级提高2715", "会心"},
		{"无双等级1830", "无双"},
		{"外功破防等级提高800", "破防"},
		{"内功攻击提高500", "攻击"},
		{"破招值950", "破招"},
	}
	for _, tt := range tests {
		got := format([]Attribute{{Type: "unknown", Label: tt.label}}, nil)
		if len(got) != 1 || got[0].Label != tt.want {
			t.Errorf("label %q => %+v, want %q", tt.label, got, tt.want)
		}
	}
}

func TestFormatAttributesCanonicalRenames(t *testing.T) {
	tests := []struct {
		typeName string
		want     string
	}{
		{"会心效果", "会效"},
		{"治疗成效", "治疗"},
	}
	for _, tt := range tests {
		got := format(
			[]Attribute{{Type: "t"}},
			StringMap{"t": tt.typeName},
		)
		if len(got) != 1 || got[0].Label != tt.want {
			t.Errorf("%q => %+v, want %q", tt.typeName, got, tt.want)
		}
	}
}

func TestFormatAttributesColorNormalization(t *testing.T) {
	got := format([]Attribute{
		{Type: "a", Label: "会心等级100", Color: "#ffffff"},
		{Type: "b", Label: "无双等级100", Color: "#00ff00"},
	}, nil)

	if got[0].Color != "" {
		t.Errorf("白色应归一化为空串, got %q", got[0].Color)
	}
	if got[1].Color != "#00ff00" {
		t.Errorf("其他颜色应保留, got %q", got[1].Color)
	}
}

func TestFormatAttributesSkipsEmpty(t *testing.T) {
	got := format([]Attribute{
		{Type: "u", Label: ""},
		{Type: "v", Label: "123"},
	}, nil)

	if len(got) != 0 {
		t.Errorf("整理后为空的词条应跳过: %+v", got)
	}
}

func TestIsTradable(t *testing.T) {
	tests := []struct {
		bindType int
		want     bool
	}{
		{BindNone, true},
		{BindOnEquip, true},
		{BindOnPickup, false},
		{0, false},
	}
	for _, tt := range tests {
		e := Equipment{BindType: tt.bindType}
		if got := e.IsTradable(); got != tt.want {
			t.Errorf("IsTradable(BindType=%d) = %v, want %v", tt.bindType, got, tt.want)
		}
	}
}
