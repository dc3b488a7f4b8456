package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Client Discord 机器人客户端封装
// 显式构造并注入，不使用进程级单例；生命周期为 NewClient → Connect → Close
type Client struct {
	session *discordgo.Session
	logger  *zap.Logger
}

// NewClient 创建 Discord 会话（尚未建立网关连接）
func NewClient(token string, logger *zap.Logger) (*Client, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("创建 Discord 会话失败: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	return &Client{session: session, logger: logger}, nil
}

// Connect 建立网关连接，就绪事件到达时记录日志
func (c *Client) Connect() error {
	c.session.AddHandlerOnce(func(_ *discordgo.Session, r *discordgo.Ready) {
		c.logger.Info("Discord 机器人就绪",
			zap.String("username", r.User.Username),
			zap.String("discriminator", r.User.Discriminator),
		)
	})

	if err := c.session.Open(); err != nil {
		return fmt.Errorf("连接 Discord 网关失败: %w", err)
	}
	return nil
}

// Close 断开网关连接
func (c *Client) Close() error {
	return c.session.Close()
}

// SendToChannel 向指定频道依次发送多条文本消息
// 频道无法解析或不是可发文类型时返回错误，不做部分发送
func (c *Client) SendToChannel(channelID string, contents ...string) error {
	channel, err := c.session.Channel(channelID)
	if err != nil {
		return fmt.Errorf("解析频道 %s 失败: %w", channelID, err)
	}
	if !isTextBased(channel.Type) {
		return fmt.Errorf("频道 %s 不是可发文的文本频道", channelID)
	}

	for _, content := range contents {
		if _, err := c.session.ChannelMessageSend(channelID, content); err != nil {
			return fmt.Errorf("向频道 %s 发送消息失败: %w", channelID, err)
		}
	}

	return nil
}

// isTextBased 判断频道类型是否支持发送文本
func isTextBased(t discordgo.ChannelType) bool {
	switch t {
	case discordgo.ChannelTypeGuildText,
		discordgo.ChannelTypeDM,
		discordgo.ChannelTypeGroupDM,
		discordgo.ChannelTypeGuildNews,
		discordgo.ChannelTypeGuildNewsThread,
		discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread:
		return true
	default:
		return false
	}
}
