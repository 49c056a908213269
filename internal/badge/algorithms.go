package badge

import (
	"sort"

	"github.com/SlpAus/skillswap-connect-backend/internal/user"
)

// BuildLeaderboard 把身份仓库和徽章账本投影为排行榜。
// 两边出现的每个用户名（不区分大小写）恰好出现一次，零徽章的用户也在其中。
// 排序：徽章数降序，然后用户名升序，最后按小写键升序，保证结果稳定可复现。
func BuildLeaderboard(users []user.User, holdings []Holding) []Row {
	rows := make([]Row, 0, len(users)+len(holdings))
	keys := make([]string, 0, cap(rows))
	index := make(map[string]int, cap(rows))

	for _, h := range holdings {
		if _, ok := index[h.Key]; ok {
			continue
		}
		index[h.Key] = len(rows)
		keys = append(keys, h.Key)
		list := make([]string, len(h.Badges))
		copy(list, h.Badges)
		rows = append(rows, Row{
			Username:      h.Username,
			Badges:        len(list),
			BadgesList:    list,
			SkillsOffered: []string{},
			SkillsWanted:  []string{},
		})
	}

	for _, u := range users {
		key := user.NormalizeUsername(u.Username)
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			keys = append(keys, key)
			rows = append(rows, Row{BadgesList: []string{}})
		}
		// 注册用户的展示名与技能以身份仓库为准
		rows[i].Username = u.Username
		rows[i].SkillsOffered = u.Offered()
		rows[i].SkillsWanted = u.Wanted()
	}

	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := rows[order[a]], rows[order[b]]
		if ra.Badges != rb.Badges {
			return ra.Badges > rb.Badges
		}
		if ra.Username != rb.Username {
			return ra.Username < rb.Username
		}
		return keys[order[a]] < keys[order[b]]
	})

	sorted := make([]Row, 0, len(rows))
	for _, i := range order {
		sorted = append(sorted, rows[i])
	}
	return sorted
}
