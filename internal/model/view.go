package model

import "social-client/internal/util"

// PostView 面向展示层的帖子投影
type PostView struct {
	ID           int
	Content      string
	Username     string
	DisplayName  string
	ImageURL     *string
	CreatedAt    string
	RelativeTime string
	IsLiked      bool
}

// ToView 构造展示投影，时间字段同时给出绝对与相对两种可读形式
func (p *Post) ToView() PostView {
	return PostView{
		ID:           p.ID,
		Content:      p.Content,
		Username:     p.Author.Username,
		DisplayName:  p.Author.DisplayName(),
		ImageURL:     p.ImageURL,
		CreatedAt:    util.FormatCreatedAt(p.CreatedAt),
		RelativeTime: util.RelativeTime(p.CreatedAt),
		IsLiked:      p.IsLiked,
	}
}
