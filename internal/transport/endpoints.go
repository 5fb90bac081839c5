package transport

import "strconv"

// Endpoints 按服务端路由契约构造请求地址
type Endpoints struct {
	base string
}

// NewEndpoints 创建一个新的 Endpoints 实例
func NewEndpoints(base string) Endpoints {
	return Endpoints{base: base}
}

func (e Endpoints) Register() string {
	return e.base + "/register"
}

func (e Endpoints) Login() string {
	return e.base + "/login"
}

func (e Endpoints) Profile(id int) string {
	return e.base + "/profile/" + strconv.Itoa(id)
}

func (e Endpoints) Posts() string {
	return e.base + "/posts"
}

func (e Endpoints) Post(id int) string {
	return e.base + "/posts/" + strconv.Itoa(id)
}

func (e Endpoints) Like(postID int) string {
	return e.base + "/posts/" + strconv.Itoa(postID) + "/like"
}

func (e Endpoints) Comments(postID int) string {
	return e.base + "/posts/" + strconv.Itoa(postID) + "/comments"
}
