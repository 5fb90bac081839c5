package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Persisted 是跨进程保存的会话子集；currentUser 永远重新拉取，不落盘
type Persisted struct {
	UserID    int    `json:"user_id"`
	AuthToken string `json:"auth_token"`
}

// Persistence 定义会话持久化接口
type Persistence interface {
	Load() (*Persisted, error)
	Save(rec *Persisted) error
	Clear() error
}

// FileStore 将会话保存为本地 JSON 文件
type FileStore struct {
	path string
}

// NewFileStore 创建一个新的 FileStore 实例
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load 读取持久化的会话；文件不存在时返回 (nil, nil)
func (s *FileStore) Load() (*Persisted, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("读取会话文件失败: %w", err)
	}

	var rec Persisted
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("解析会话文件失败: %w", err)
	}
	return &rec, nil
}

// Save 写入持久化的会话，必要时创建父目录
func (s *FileStore) Save(rec *Persisted) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("创建会话目录失败: %w", err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("序列化会话失败: %w", err)
	}

	// 令牌属于敏感内容，仅所有者可读写
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("保存会话文件失败: %w", err)
	}
	return nil
}

// Clear 删除持久化的会话；文件本就不存在时视为成功
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("删除会话文件失败: %w", err)
	}
	return nil
}
