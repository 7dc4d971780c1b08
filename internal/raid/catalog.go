package raid

// entry 构造静态目录中的一个副本条目
func entry(name, difficulty string, playerCount, level int, version string, active bool) Raid {
	return Raid{
		RaidID:      MakeRaidID(name, playerCount, difficulty),
		Name:        name,
		Difficulty:  difficulty,
		PlayerCount: playerCount,
		Level:       level,
		Version:     version,
		IsActive:    active,
	}
}

// DefaultCatalog 返回内置的历代团本目录。
// 旧资料片的副本默认不启用，当前资料片（丝路风雨）默认启用。
func DefaultCatalog() []Raid {
	return []Raid{
		// 风起稻香 (70级)
		entry("战宝迦兰", DifficultyNormal, 10, 70, "风起稻香", false),
		entry("战宝迦兰", DifficultyHeroic, 25, 70, "风起稻香", false),
		entry("荻花宫后山", DifficultyNormal, 10, 70, "风起稻香", false),
		entry("宫中神武遗迹", DifficultyNormal, 10, 70, "风起稻香", false),
		entry("宫中神武遗迹", DifficultyHeroic, 25, 70, "风起稻香", false),
		entry("持国天王殿", DifficultyNormal, 10, 70, "风起稻香", false),

		// 巴蜀风云 (80级)
		entry("龙渊泽", DifficultyNormal, 10, 80, "巴蜀风云", false),
		entry("龙渊泽", DifficultyHeroic, 10, 80, "巴蜀风云", false),
		entry("龙渊泽", DifficultyNormal, 25, 80, "巴蜀风云", false),
		entry("龙渊泽", DifficultyHeroic, 25, 80, "巴蜀风云", false),
		entry("荻花圣殿", DifficultyNormal, 10, 80, "巴蜀风云", false),
		entry("荻花圣殿", DifficultyHeroic, 10, 80, "巴蜀风云", false),
		entry("荻花圣殿", DifficultyNormal, 25, 80, "巴蜀风云", false),
		entry("荻花圣殿", DifficultyHeroic, 25, 80, "巴蜀风云", false),
		entry("烛龙殿", DifficultyNormal, 10, 80, "巴蜀风云", false),
		entry("烛龙殿", DifficultyNormal, 25, 80, "巴蜀风云", false),
		entry("烛龙殿", DifficultyHeroic, 25, 80, "巴蜀风云", false),
		entry("持国回忆录", DifficultyNormal, 10, 80, "巴蜀风云", false),
		entry("持国回忆录", DifficultyHeroic, 25, 80, "巴蜀风云", false),
		entry("会战唐门", DifficultyNormal, 10, 80, "巴蜀风云", false),
		entry("会战唐门", DifficultyHeroic, 25, 80, "巴蜀风云", false),
		entry("南诏皇宫", DifficultyNormal, 10, 80, "巴蜀风云", false),
		entry("南诏皇宫", DifficultyNormal, 25, 80, "巴蜀风云", false),
		entry("南诏皇宫", DifficultyHeroic, 25, 80, "巴蜀风云", false),

		// 安史之乱 (90级)
		entry("战宝军械库", DifficultyNormal, 10, 90, "安史之乱", false),
		entry("战宝军械库", DifficultyNormal, 25, 90, "安史之乱", false),
		entry("战宝军械库", DifficultyHeroic, 25, 90, "安史之乱", false),
		entry("大明宫", DifficultyNormal, 10, 90, "安史之乱", false),
		entry("大明宫", DifficultyNormal, 25, 90, "安史之乱", false),
		entry("大明宫", DifficultyHeroic, 25, 90, "安史之乱", false),
		entry("血战天策", DifficultyNormal, 10, 90, "安史之乱", false),
		entry("血战天策", DifficultyNormal, 25, 90, "安史之乱", false),
		entry("血战天策", DifficultyHeroic, 25, 90, "安史之乱", false),
		entry("风雪稻香村", DifficultyNormal, 10, 90, "安史之乱", false),
		entry("风雪稻香村", DifficultyNormal, 25, 90, "安史之乱", false),
		entry("风雪稻香村", DifficultyHeroic, 25, 90, "安史之乱", false),
		entry("秦皇陵", DifficultyNormal, 10, 90, "安史之乱", false),
		entry("秦皇陵", DifficultyNormal, 25, 90, "安史之乱", false),
		entry("秦皇陵", DifficultyHeroic, 25, 90, "安史之乱", false),
		entry("夜守孤城", DifficultyNormal, 10, 90, "安史之乱", false),
		entry("夜守孤城", DifficultyNormal, 25, 90, "安史之乱", false),
		entry("夜守孤城", DifficultyHeroic, 25, 90, "安史之乱", false),
		entry("夜守孤城", DifficultyChallenge, 25, 90, "安史之乱", false),
		entry("逐虎驱狼", DifficultyNormal, 10, 90, "安史之乱", false),
		entry("逐虎驱狼", DifficultyNormal, 25, 90, "安史之乱", false),
		entry("逐虎驱狼", DifficultyHeroic, 25, 90, "安史之乱", false),
		entry("逐虎驱狼", DifficultyChallenge, 25, 90, "安史之乱", false),

		// 剑胆琴心 (95级)
		entry("永王行宫·仙侣庭园", DifficultyNormal, 10, 95, "剑胆琴心", false),
		entry("永王行宫·仙侣庭园", DifficultyNormal, 25, 95, "剑胆琴心", false),
		entry("永王行宫·仙侣庭园", DifficultyHeroic, 25, 95, "剑胆琴心", false),
		entry("永王行宫·仙侣庭园", DifficultyChallenge, 25, 95, "剑胆琴心", false),
		entry("永王行宫·花月别院", DifficultyNormal, 10, 95, "剑胆琴心", false),
		entry("永王行宫·花月别院", DifficultyNormal, 25, 95, "剑胆琴心", false),
		entry("永王行宫·花月别院", DifficultyHeroic, 25, 95, "剑胆琴心", false),
		entry("永王行宫·花月别院", DifficultyChallenge, 25, 95, "剑胆琴心", false),

		// 风骨霸刀 (95级)
		entry("上阳宫·观风殿", DifficultyNormal, 10, 95, "风骨霸刀", false),
		entry("上阳宫·观风殿", DifficultyNormal, 25, 95, "风骨霸刀", false),
		entry("上阳宫·观风殿", DifficultyHeroic, 25, 95, "风骨霸刀", false),
		entry("上阳宫·双曜亭", DifficultyNormal, 10, 95, "风骨霸刀", false),
		entry("上阳宫·双曜亭", DifficultyNormal, 25, 95, "风骨霸刀", false),
		entry("上阳宫·双曜亭", DifficultyHeroic, 25, 95, "风骨霸刀", false),
		entry("风雷刀谷·锻刀厅", DifficultyNormal, 10, 95, "风骨霸刀", false),
		entry("风雷刀谷·锻刀厅", DifficultyNormal, 25, 95, "风骨霸刀", false),
		entry("风雷刀谷·锻刀厅", DifficultyHeroic, 25, 95, "风骨霸刀", false),
		entry("风雷刀谷·千雷殿", DifficultyNormal, 10, 95, "风骨霸刀", false),
		entry("风雷刀谷·千雷殿", DifficultyNormal, 25, 95, "风骨霸刀", false),
		entry("风雷刀谷·千雷殿", DifficultyHeroic, 25, 95, "风骨霸刀", false),

		// 重制版 (95级)
		entry("狼牙堡·战兽山", DifficultyNormal, 10, 95, "重制版", false),
		entry("狼牙堡·战兽山", DifficultyNormal, 25, 95, "重制版", false),
		entry("狼牙堡·战兽山", DifficultyHeroic, 25, 95, "重制版", false),
		entry("狼牙堡·燕然峰", DifficultyNormal, 10, 95, "重制版", false),
		entry("狼牙堡·燕然峰", DifficultyNormal, 25, 95, "重制版", false),
		entry("狼牙堡·燕然峰", DifficultyHeroic, 25, 95, "重制版", false),
		entry("狼牙堡·辉天堑", DifficultyNormal, 10, 95, "重制版", false),
		entry("狼牙堡·辉天堑", DifficultyNormal, 25, 95, "重制版", false),
		entry("狼牙堡·辉天堑", DifficultyHeroic, 25, 95, "重制版", false),
		entry("狼神殿", DifficultyNormal, 10, 95, "重制版", false),
		entry("狼神殿", DifficultyNormal, 25, 95, "重制版", false),
		entry("狼神殿", DifficultyHeroic, 25, 95, "重制版", false),

		// 世外蓬莱 (100级)
		entry("荒血路", DifficultyNormal, 10, 100, "世外蓬莱", false),
		entry("荒血路", DifficultyNormal, 25, 100, "世外蓬莱", false),
		entry("荒血路", DifficultyHeroic, 25, 100, "世外蓬莱", false),
		entry("青莲狱", DifficultyNormal, 10, 100, "世外蓬莱", false),
		entry("青莲狱", DifficultyNormal, 25, 100, "世外蓬莱", false),
		entry("青莲狱", DifficultyHeroic, 25, 100, "世外蓬莱", false),
		entry("巨冥湾", DifficultyNormal, 10, 100, "世外蓬莱", false),
		entry("巨冥湾", DifficultyNormal, 25, 100, "世外蓬莱", false),
		entry("巨冥湾", DifficultyHeroic, 25, 100, "世外蓬莱", false),
		entry("饕餮洞", DifficultyNormal, 10, 100, "世外蓬莱", false),
		entry("饕餮洞", DifficultyNormal, 25, 100, "世外蓬莱", false),
		entry("敖龙岛", DifficultyNormal, 10, 100, "世外蓬莱", false),
		entry("敖龙岛", DifficultyNormal, 25, 100, "世外蓬莱", false),
		entry("范阳夜变", DifficultyNormal, 10, 100, "世外蓬莱", false),
		entry("范阳夜变", DifficultyNormal, 25, 100, "世外蓬莱", false),

		// 奉天证道 (110级)
		entry("达摩洞", DifficultyNormal, 10, 110, "奉天证道", false),
		entry("达摩洞", DifficultyNormal, 25, 110, "奉天证道", false),
		entry("达摩洞", DifficultyHeroic, 25, 110, "奉天证道", false),
		entry("白帝江关", DifficultyNormal, 10, 110, "奉天证道", false),
		entry("白帝江关", DifficultyNormal, 25, 110, "奉天证道", false),
		entry("白帝江关", DifficultyHeroic, 25, 110, "奉天证道", false),
		entry("雷域大泽", DifficultyNormal, 10, 110, "奉天证道", false),
		entry("雷域大泽", DifficultyNormal, 25, 110, "奉天证道", false),
		entry("雷域大泽", DifficultyHeroic, 25, 110, "奉天证道", false),
		entry("河阳之战", DifficultyNormal, 10, 110, "奉天证道", false),
		entry("河阳之战", DifficultyNormal, 25, 110, "奉天证道", false),
		entry("河阳之战", DifficultyHeroic, 25, 110, "奉天证道", false),

		// 横刀断浪 (120级)
		entry("西津渡", DifficultyNormal, 10, 120, "横刀断浪", false),
		entry("西津渡", DifficultyNormal, 25, 120, "横刀断浪", false),
		entry("西津渡", DifficultyHeroic, 25, 120, "横刀断浪", false),
		entry("武狱黑牢", DifficultyNormal, 10, 120, "横刀断浪", false),
		entry("武狱黑牢", DifficultyNormal, 25, 120, "横刀断浪", false),
		entry("武狱黑牢", DifficultyHeroic, 25, 120, "横刀断浪", false),
		entry("九老洞", DifficultyNormal, 10, 120, "横刀断浪", false),
		entry("九老洞", DifficultyNormal, 25, 120, "横刀断浪", false),
		entry("九老洞", DifficultyHeroic, 25, 120, "横刀断浪", false),
		entry("冷龙峰", DifficultyNormal, 10, 120, "横刀断浪", false),
		entry("冷龙峰", DifficultyNormal, 25, 120, "横刀断浪", false),
		entry("冷龙峰", DifficultyHeroic, 25, 120, "横刀断浪", false),

		// 丝路风雨 (130级，当前资料片)
		entry("一之窟", DifficultyNormal, 10, 130, "丝路风雨", true),
		entry("一之窟", DifficultyNormal, 25, 130, "丝路风雨", true),
		entry("一之窟", DifficultyHeroic, 25, 130, "丝路风雨", true),
		entry("太极宫", DifficultyNormal, 10, 130, "丝路风雨", true),
		entry("太极宫", DifficultyNormal, 25, 130, "丝路风雨", true),
		entry("太极宫", DifficultyHeroic, 25, 130, "丝路风雨", true),
		entry("弓月城", DifficultyNormal, 10, 130, "丝路风雨", true),
		entry("弓月城", DifficultyNormal, 25, 130, "丝路风雨", true),
		entry("弓月城", DifficultyHeroic, 25, 130, "丝路风雨", true),
		entry("缚罪之渊", DifficultyChallenge, 25, 130, "丝路风雨", true),
	}
}
