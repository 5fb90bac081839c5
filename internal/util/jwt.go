package util

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// IsTokenExpired 在不校验签名的情况下检查令牌的 exp 声明是否已过期。
// 签名校验是服务端的职责；客户端只用 exp 避免用一个注定失效的令牌恢复会话。
// 无法解析或没有 exp 声明时返回 false，交给服务端判定。
func IsTokenExpired(tokenString string) bool {
	parser := &jwt.Parser{}
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return time.Now().After(time.Unix(int64(exp), 0))
}
