package xplan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go4.org/netipx"

	"github.com/omeyang/v6kit/pkg/xip6"
)

// Format 表示规划文件格式。
type Format string

const (
	// FormatYAML 表示 YAML 格式。
	FormatYAML Format = "yaml"
	// FormatJSON 表示 JSON 格式。
	FormatJSON Format = "json"
)

// planFile 是规划文件的反序列化结构。
type planFile struct {
	Format   string         `koanf:"format"`
	Networks []networkEntry `koanf:"networks"`
}

// networkEntry 是单个命名网络条目。
type networkEntry struct {
	Name string `koanf:"name"`
	CIDR string `koanf:"cidr"`
}

// Plan 是加载后的编址规划。
// 必须通过 [Load] 或 [LoadBytes] 创建；加载后不可变，查询方法并发安全。
type Plan struct {
	opts   xip6.FormatOptions
	names  []string
	byName map[string]xip6.Network
	set    *netipx.IPSet
}

// Load 从文件路径加载规划。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func Load(path string) (*Plan, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	return LoadBytes(data, format)
}

// LoadBytes 从字节数据加载规划，需要显式指定格式。
// 空数据得到一个没有任何网络的规划。
func LoadBytes(data []byte, format Format) (*Plan, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	var pf planFile
	if err := k.Unmarshal("", &pf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	return build(pf)
}

// build 校验反序列化结果并生成不可变的 Plan。
func build(pf planFile) (*Plan, error) {
	opts, err := xip6.ParseFormatFlags(pf.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	p := &Plan{
		opts:   opts,
		names:  make([]string, 0, len(pf.Networks)),
		byName: make(map[string]xip6.Network, len(pf.Networks)),
	}

	var sb netipx.IPSetBuilder
	for _, e := range pf.Networks {
		if e.Name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := p.byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}

		net, err := xip6.ParseNetwork(e.CIDR)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadCIDR, e.Name, err)
		}
		// 主机位在加载期清零，Network/Covers/Owners 看到同一个规范网络
		net = net.Masked()

		p.names = append(p.names, e.Name)
		p.byName[e.Name] = net
		sb.AddPrefix(net.Prefix())
	}

	set, err := sb.IPSet()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	p.set = set

	return p, nil
}

// Options 返回规划声明的展示格式，未声明时为规范短格式。
func (p *Plan) Options() xip6.FormatOptions {
	return p.opts
}

// Names 按文件顺序返回全部网络名。返回的是副本，可自由修改。
func (p *Plan) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Network 按名字返回网络，不存在时返回 ErrUnknownNetwork。
func (p *Plan) Network(name string) (xip6.Network, error) {
	net, ok := p.byName[name]
	if !ok {
		return xip6.Network{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	return net, nil
}

// Len 返回规划中的网络数量。
func (p *Plan) Len() int {
	return len(p.names)
}

// Covers 报告地址是否落在规划内的任意网络中。
func (p *Plan) Covers(addr xip6.Addr) bool {
	return p.set.Contains(addr.Netip())
}

// Owners 返回包含给定地址的全部网络名，按文件顺序排列。
// 没有任何网络包含该地址时返回 nil。
func (p *Plan) Owners(addr xip6.Addr) []string {
	var out []string
	for _, name := range p.names {
		if p.byName[name].Contains(addr) {
			out = append(out, name)
		}
	}
	return out
}

// detectFormat 根据文件扩展名检测规划格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}
