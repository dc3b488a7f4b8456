package giphy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.giphy.com"

// Client Giphy 随机图片客户端
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient 创建 Giphy 客户端
func NewClient(logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
		logger:     logger,
	}
}

// NewClientWithBaseURL 创建指向指定地址的客户端，供测试替换端点
func NewClientWithBaseURL(baseURL string, logger *zap.Logger) *Client {
	c := NewClient(logger)
	c.baseURL = baseURL
	return c
}

// FetchRandomGif 从 Giphy 随机接口获取一张庆祝主题 GIF 的 URL
// 非 2xx、网络错误或响应缺少 URL 时视为无可用图片
func (c *Client) FetchRandomGif(ctx context.Context, apiKey string) (string, error) {
	endpoint := fmt.Sprintf(
		"%s/v1/gifs/random?api_key=%s&tag=celebration&rating=g",
		c.baseURL, url.QueryEscape(apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("构造 Giphy 请求失败: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求 Giphy 失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("Giphy 返回非预期状态码 %d", resp.StatusCode)
	}

	var payload struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("解析 Giphy 响应失败: %w", err)
	}
	if payload.Data.URL == "" {
		return "", errors.New("Giphy 响应中没有可用的 GIF URL")
	}

	return payload.Data.URL, nil
}
