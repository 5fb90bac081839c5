package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 结构体用于存储客户端的配置信息
type Config struct {
	APIBaseURL     string
	RequestTimeout int // 秒
	AuthMode       string
	SessionFile    string
	LogLevel       string
	Debug          bool // 是否开启调试模式
}

// AppConfig 是全局配置变量
var AppConfig Config

// Init 函数用于初始化配置
func Init() {
	// 加载 .env 文件
	err := godotenv.Load()
	if err != nil {
		log.Printf("警告：无法加载 .env 文件: %v", err)
	}

	// 从环境变量中读取配置
	AppConfig = Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8081/api"),
		RequestTimeout: getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 15),
		AuthMode:       getEnv("AUTH_MODE", "bearer"),
		SessionFile:    getEnv("SESSION_FILE", defaultSessionFile()),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Debug:          getEnvAsBool("DEBUG", false),
	}
}

// defaultSessionFile 返回默认的会话持久化路径
func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".social-client", "session.json")
}

// getEnv 从环境变量中读取字符串值，不存在时返回默认值
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt 从环境变量中读取整数值，解析失败时返回默认值
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool 从环境变量中读取布尔值，解析失败时返回默认值
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
