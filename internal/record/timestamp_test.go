package record

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexTimeUnmarshalNumber(t *testing.T) {
	var ft FlexTime
	if err := json.Unmarshal([]byte("1760000000000"), &ft); err != nil {
		t.Fatalf("解析数字时间戳失败: %v", err)
	}
	if ft.Millis() != 1760000000000 {
		t.Errorf("Millis() = %d, want 1760000000000", ft.Millis())
	}
}

func TestFlexTimeUnmarshalISOString(t *testing.T) {
	var ft FlexTime
	if err := json.Unmarshal([]byte(`"2026-02-16T07:00:00"`), &ft); err != nil {
		t.Fatalf("解析ISO字符串失败: %v", err)
	}
	want := time.Date(2026, 2, 16, 7, 0, 0, 0, time.Local).UnixMilli()
	if ft.Millis() != want {
		t.Errorf("Millis() = %d, want %d", ft.Millis(), want)
	}
}

func TestFlexTimeNumberAndStringAgree(t *testing.T) {
	// 同一时刻的两种形态归一化后必须相等
	moment := time.Date(2026, 2, 16, 7, 0, 0, 0, time.Local)

	var fromNumber, fromString FlexTime
	numJSON, _ := json.Marshal(moment.UnixMilli())
	strJSON, _ := json.Marshal(moment.Format("2006-01-02T15:04:05"))

	if err := json.Unmarshal(numJSON, &fromNumber); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(strJSON, &fromString); err != nil {
		t.Fatal(err)
	}
	if fromNumber != fromString {
		t.Errorf("数字形态 %d 和字符串形态 %d 不一致", fromNumber, fromString)
	}
}

func TestFlexTimeUnparseable(t *testing.T) {
	tests := []string{`"not-a-date"`, `""`, `null`, `"2026/13/99"`}
	for _, in := range tests {
		var ft FlexTime
		if err := json.Unmarshal([]byte(in), &ft); err != nil {
			t.Errorf("输入 %s 不应报错: %v", in, err)
			continue
		}
		if !ft.IsZero() {
			t.Errorf("输入 %s 应归一化为0, got %d", in, ft.Millis())
		}
	}
}

func TestFlexTimeZeroSortsFirst(t *testing.T) {
	var broken FlexTime // 无法解析的时间
	valid := FlexTime(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli())

	if broken >= valid {
		t.Error("无效时间应排在所有有效时间之前")
	}
}

func TestFlexTimeMarshalEmitsNumber(t *testing.T) {
	ft := FlexTime(1760000000000)
	data, err := json.Marshal(ft)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1760000000000" {
		t.Errorf("Marshal输出 = %s, want 1760000000000", data)
	}
}

func TestEpochMillis(t *testing.T) {
	moment := time.Date(2026, 2, 16, 7, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		in   interface{}
		want int64
	}{
		{"nil", nil, 0},
		{"int64", int64(123), 123},
		{"float64", float64(456), 456},
		{"FlexTime", FlexTime(789), 789},
		{"time.Time", moment, moment.UnixMilli()},
		{"日期字符串", "2026-02-16T07:00:00", moment.UnixMilli()},
		{"垃圾字符串", "garbage", 0},
		{"未知类型", struct{}{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EpochMillis(tt.in); got != tt.want {
				t.Errorf("EpochMillis(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
