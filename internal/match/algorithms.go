package match

import "github.com/SlpAus/skillswap-connect-backend/internal/user"

// FindMatches 返回与 target 互相匹配的用户：
// 对方可教的技能中至少有一项是 target 想学的，且对方想学的技能中至少有一项是 target 可教的。
// target 自己永远不在结果中；结果保持 candidates 的顺序，不做排序。
// 技能名按原样比较，不做大小写或空白归一化。
func FindMatches(target user.User, candidates []user.User) []user.User {
	matches := make([]user.User, 0)
	if len(target.SkillsWanted) == 0 || len(target.SkillsOffered) == 0 {
		return matches
	}
	for _, candidate := range candidates {
		if isMatch(target, candidate) {
			matches = append(matches, candidate)
		}
	}
	return matches
}

// isMatch 判断 a 与 b 是否互相匹配，该关系是对称的
func isMatch(a, b user.User) bool {
	if a.UUID == b.UUID {
		return false
	}
	return intersects(b.SkillsOffered, toSet(a.SkillsWanted)) &&
		intersects(b.SkillsWanted, toSet(a.SkillsOffered))
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}

func intersects(skills []string, set map[string]struct{}) bool {
	for _, s := range skills {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}
