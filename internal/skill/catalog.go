package skill

import "math/rand/v2"

// Catalog 是“随机推荐”使用的固定技能目录
var Catalog = [...]string{
	"Guitar",
	"Cooking",
	"Coding",
	"Painting",
	"Yoga",
	"Photography",
	"Public Speaking",
	"Writing",
	"Chess",
	"Dancing",
}

// Suggest 从目录中等概率随机挑选一个技能
func Suggest() string {
	return Catalog[rand.IntN(len(Catalog))]
}
