// Package kvstore 提供本地持久化键值存储。
// 每个键对应数据目录下的一个文本文件，值为可直接查看的序列化文本；
// 每次写入都整体覆盖文件内容，不做增量修改。
package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store 定义键值存储接口
type Store interface {
	// Get 读取键值，第二个返回值表示键是否存在
	Get(key string) (string, bool, error)

	// Set 写入键值，整体覆盖旧值
	Set(key, value string) error

	// Delete 删除键，键不存在时为空操作
	Delete(key string) error
}

// FileStore 基于文件系统的键值存储实现
type FileStore struct {
	dir string
}

// NewFileStore 创建文件键值存储，数据目录不存在时自动创建
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get 读取键值
func (s *FileStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read key %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set 写入键值
func (s *FileStore) Set(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("write key %q: %w", key, err)
	}
	return nil
}

// Delete 删除键
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}

// path 将键映射到数据目录下的文件路径
// 键名中的路径分隔符替换为下划线，避免逃出数据目录
func (s *FileStore) path(key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}

// MemoryStore 内存键值存储实现（用于开发和测试）
type MemoryStore struct {
	data map[string]string
}

// NewMemoryStore 创建内存键值存储实例
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	delete(s.data, key)
	return nil
}
