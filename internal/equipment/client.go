package equipment

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	searchEndpoint = "https://node.jx3box.com/api/node/item/search"
	pageSize       = 50
	// maxPages 防止上游分页异常时无限拉取
	maxPages = 50
)

var httpClient = &http.Client{Timeout: 15 * time.Second}

// remoteAttribute 对应jx3box条目的单条属性
type remoteAttribute struct {
	GenAttributeType string `json:"GenAttributeType"`
	Label            string `json:"label"`
	Color            string `json:"color"`
	Value            string `json:"value"`
}

// remoteItem 对应jx3box物品搜索接口的单条返回
type remoteItem struct {
	ID             json.Number       `json:"id"`
	SourceID       json.Number       `json:"SourceID"`
	Name           string            `json:"Name"`
	UiID           json.Number       `json:"UiID"`
	IconID         json.Number       `json:"IconID"`
	Level          int               `json:"Level"`
	Quality        json.Number       `json:"Quality"`
	BindType       int               `json:"BindType"`
	Attributes     []remoteAttribute `json:"attributes"`
	AttributeTypes map[string]string `json:"__attributeTypes"`
}

type searchResponse struct {
	Code int `json:"code"`
	Data struct {
		Data []remoteItem `json:"data"`
	} `json:"data"`
}

// FetchCatalog 从jx3box分页拉取指定关键词的装备目录。
// 按SourceID（缺失时退用id）去重，并二次校验名称确实包含关键词，
// 因为上游搜索是模糊匹配。
func FetchCatalog(keyword string) ([]Equipment, error) {
	seen := make(map[string]struct{})
	var result []Equipment

	for page := 1; page <= maxPages; page++ {
		items, err := fetchPage(keyword, page)
		if err != nil {
			return nil, fmt.Errorf("拉取第 %d 页失败: %w", page, err)
		}
		if len(items) == 0 {
			break
		}

		for _, item := range items {
			if keyword != "" && !strings.Contains(item.Name, keyword) {
				continue
			}
			id := item.SourceID.String()
			if id == "" || id == "0" {
				id = item.ID.String()
			}
			if id == "" || id == "0" {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			result = append(result, convertItem(id, item))
		}

		if len(items) < pageSize {
			break
		}
	}

	return result, nil
}

func fetchPage(keyword string, page int) ([]remoteItem, error) {
	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("page", strconv.Itoa(page))
	params.Set("per", strconv.Itoa(pageSize))
	params.Set("client", "std")

	resp, err := httpClient.Get(searchEndpoint + "?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("上游返回状态码 %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}
	return body.Data.Data, nil
}

func convertItem(id string, item remoteItem) Equipment {
	attrs := make(AttributeList, 0, len(item.Attributes))
	for _, a := range item.Attributes {
		attrs = append(attrs, Attribute{
			Type:  a.GenAttributeType,
			Label: a.Label,
			Color: a.Color,
			Value: a.Value,
		})
	}

	iconID, _ := item.IconID.Int64()

	return Equipment{
		EquipID:        id,
		Name:           item.Name,
		UiID:           item.UiID.String(),
		IconID:         int(iconID),
		Level:          item.Level,
		Quality:        item.Quality.String(),
		BindType:       item.BindType,
		Attributes:     attrs,
		AttributeTypes: StringMap(item.AttributeTypes),
	}
}
