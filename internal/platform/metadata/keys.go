package metadata

const (
	// DemoSeededAtKey 记录最近一次成功写入演示数据的时间（RFC3339）
	DemoSeededAtKey = "demo_seeded_at"

	// DemoSeedRunsKey 记录演示数据写入流程执行过的次数
	DemoSeedRunsKey = "demo_seed_runs"
)
