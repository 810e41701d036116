package game

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the fixed configuration of a process. It is built once in main
// and passed explicitly to the engine and the front ends.
type Config struct {
	MaxDepth int       // 搜索深度上限（实际深度还受剩余空格限制）
	AI       CellState // 电脑执子颜色；Empty 表示双人对战
	First    CellState // 先手颜色
	Workers  int       // 根节点并行度；1 = 顺序搜索
}

var ErrInvalidConfig = errors.New("invalid config")

// DefaultConfig 白先、电脑执黑、深度 5
func DefaultConfig() Config {
	return Config{
		MaxDepth: 5,
		AI:       Black,
		First:    White,
		Workers:  1,
	}
}

func (c Config) Validate() error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: depth must be >= 1, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.First != Black && c.First != White {
		return fmt.Errorf("%w: first player must be black or white, got %v", ErrInvalidConfig, c.First)
	}
	if c.AI != Empty && c.AI != Black && c.AI != White {
		return fmt.Errorf("%w: unknown ai color %d", ErrInvalidConfig, c.AI)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// ParseColor 解析命令行里的颜色参数：black / white / none
func ParseColor(s string) (CellState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	case "none", "", "-":
		return Empty, nil
	}
	return Empty, fmt.Errorf("%w: unknown color %q", ErrInvalidConfig, s)
}
