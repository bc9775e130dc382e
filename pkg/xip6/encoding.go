package xip6

import "encoding/json"

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出规范短格式（如 "2001:db8::1"）。
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 接受所有 [Parse] 支持的格式；空输入返回 [ErrEmpty]
// （"::" 才是全零地址的文本表示，空串不是任何地址）。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的规范短格式字符串。
//
// 地址字符串仅含 [0-9a-f:] 字符，无需 JSON 转义，
// 直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (a Addr) MarshalJSON() ([]byte, error) {
	s := a.String()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 接受带引号的地址字符串；JSON null 保持原值不变。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return a.UnmarshalText([]byte(s))
}

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出规范 CIDR 文本（如 "2001:db8::/32"）。
func (n Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 接受所有 [ParseNetwork] 支持的格式。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (n *Network) UnmarshalText(text []byte) error {
	if n == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseNetwork(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的规范 CIDR 字符串。
func (n Network) MarshalJSON() ([]byte, error) {
	s := n.String()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 接受带引号的 CIDR 字符串；JSON null 保持原值不变。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (n *Network) UnmarshalJSON(data []byte) error {
	if n == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}
