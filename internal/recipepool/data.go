package recipepool

import "NutriViet_V1.0/internal/models"

type ing = models.Ingredient

// Calories per serving: breakfast 300-500, lunch 450-700, dinner 400-650.
var curated = []Recipe{
	/* =================================================================================
									BREAKFAST
	=================================================================================*/
	{
		Name: "Phở bò", Slot: models.SlotBreakfast, Region: models.RegionNorth,
		Description: "Bánh phở mềm trong nước dùng xương bò ninh kỹ, thơm quế hồi.",
		Ingredients: []ing{{Name: "Bánh phở", Amount: "200g"}, {Name: "Thịt bò", Amount: "100g"}, {Name: "Hành tây", Amount: "30g"}, {Name: "Rau thơm", Amount: "20g"}},
		Preparation: []string{"Ninh xương bò với quế, hồi, gừng nướng trong 3 giờ.", "Trụng bánh phở, xếp thịt bò thái mỏng lên trên.", "Chan nước dùng sôi, thêm hành và rau thơm."},
		Macros:      models.Macros{Calories: 450, Protein: 25, Fat: 12, Carbs: 60},
	},
	{
		Name: "Bánh mì trứng", Slot: models.SlotBreakfast, Region: models.RegionSouth,
		Description: "Ổ bánh mì giòn kẹp trứng ốp la, dưa leo và rau thơm.",
		Ingredients: []ing{{Name: "Bánh mì", Amount: "1 ổ"}, {Name: "Trứng gà", Amount: "2 quả"}, {Name: "Dưa leo", Amount: "30g"}, {Name: "Dầu ăn", Amount: "1 tsp"}},
		Preparation: []string{"Chiên trứng ốp la với chút dầu.", "Nướng giòn bánh mì.", "Kẹp trứng, dưa leo và rau thơm vào bánh."},
		Macros:      models.Macros{Calories: 380, Protein: 16, Fat: 14, Carbs: 48},
	},
	{
		Name: "Xôi xéo", Slot: models.SlotBreakfast, Region: models.RegionNorth,
		Description: "Xôi nếp vàng nghệ phủ đậu xanh và hành phi.",
		Ingredients: []ing{{Name: "Gạo nếp", Amount: "100g"}, {Name: "Đậu xanh", Amount: "30g"}, {Name: "Hành phi", Amount: "10g"}},
		Preparation: []string{"Ngâm gạo nếp với nghệ qua đêm rồi đồ chín.", "Hấp đậu xanh, giã nhuyễn và nắm thành cục.", "Bày xôi, bào đậu xanh lên trên, rắc hành phi."},
		Macros:      models.Macros{Calories: 450, Protein: 10, Fat: 14, Carbs: 72},
	},
	{
		Name: "Bánh cuốn", Slot: models.SlotBreakfast, Region: models.RegionNorth,
		Description: "Bánh tráng hấp mỏng cuốn nhân thịt băm mộc nhĩ.",
		Ingredients: []ing{{Name: "Bột gạo", Amount: "100g"}, {Name: "Thịt heo", Amount: "60g"}, {Name: "Mộc nhĩ", Amount: "10g"}, {Name: "Nước mắm", Amount: "1 tbsp"}},
		Preparation: []string{"Xào thịt băm với mộc nhĩ làm nhân.", "Tráng bột mỏng trên nồi hấp, cho nhân vào cuốn lại.", "Ăn kèm chả lụa và nước mắm pha."},
		Macros:      models.Macros{Calories: 320, Protein: 12, Fat: 8, Carbs: 50},
	},
	{
		Name: "Cháo gà", Slot: models.SlotBreakfast, Region: models.RegionNorth,
		Description: "Cháo gạo nhừ nấu nước luộc gà, ăn kèm thịt gà xé.",
		Ingredients: []ing{{Name: "Gạo", Amount: "50g"}, {Name: "Thịt gà", Amount: "80g"}, {Name: "Gừng", Amount: "5g"}, {Name: "Hành lá", Amount: "10g"}},
		Preparation: []string{"Luộc gà với gừng, lấy nước dùng.", "Nấu gạo với nước luộc gà đến khi nhừ.", "Xé thịt gà, cho lên cháo cùng hành lá."},
		Macros:      models.Macros{Calories: 300, Protein: 18, Fat: 6, Carbs: 44},
	},
	{
		Name: "Hủ tiếu Nam Vang", Slot: models.SlotBreakfast, Region: models.RegionSouth,
		Description: "Hủ tiếu dai với tôm, thịt băm trong nước dùng ngọt thanh.",
		Ingredients: []ing{{Name: "Hủ tiếu", Amount: "150g"}, {Name: "Tôm", Amount: "50g"}, {Name: "Thịt heo", Amount: "50g"}, {Name: "Giá đỗ", Amount: "30g"}},
		Preparation: []string{"Hầm xương heo lấy nước dùng trong.", "Trụng hủ tiếu, tôm và thịt băm.", "Chan nước dùng, thêm giá và hẹ."},
		Macros:      models.Macros{Calories: 420, Protein: 20, Fat: 10, Carbs: 62},
	},
	{
		Name: "Bún riêu cua", Slot: models.SlotBreakfast, Region: models.RegionNorth,
		Description: "Bún trong nước riêu cua đồng chua nhẹ vị cà chua.",
		Ingredients: []ing{{Name: "Bún", Amount: "200g"}, {Name: "Cua", Amount: "100g"}, {Name: "Cà chua", Amount: "80g"}, {Name: "Đậu phụ", Amount: "50g"}},
		Preparation: []string{"Giã cua, lọc lấy nước, đun cho riêu nổi.", "Xào cà chua và đậu phụ chiên cho vào nồi.", "Chan nước riêu lên bún, ăn kèm rau sống."},
		Macros:      models.Macros{Calories: 420, Protein: 20, Fat: 12, Carbs: 58},
	},
	{
		Name: "Bánh bao nhân thịt", Slot: models.SlotBreakfast, Region: models.RegionNorth,
		Description: "Bánh bao hấp mềm với nhân thịt, trứng cút và nấm.",
		Ingredients: []ing{{Name: "Bột mì", Amount: "80g"}, {Name: "Thịt heo", Amount: "50g"}, {Name: "Trứng cút", Amount: "2 quả"}, {Name: "Nấm", Amount: "10g"}},
		Preparation: []string{"Nhào bột với men, ủ đến khi nở gấp đôi.", "Trộn nhân thịt với nấm, gói cùng trứng cút.", "Hấp bánh 15 phút."},
		Macros:      models.Macros{Calories: 350, Protein: 13, Fat: 12, Carbs: 47},
	},
	{
		Name: "Bánh giò", Slot: models.SlotBreakfast, Region: models.RegionNorth,
		Description: "Bánh bột gạo gói lá chuối, nhân thịt băm mộc nhĩ.",
		Ingredients: []ing{{Name: "Bột gạo", Amount: "80g"}, {Name: "Thịt heo", Amount: "50g"}, {Name: "Mộc nhĩ", Amount: "5g"}, {Name: "Lá chuối", Amount: "2 lá"}},
		Preparation: []string{"Khuấy bột gạo với nước xương đến khi sánh.", "Cho bột và nhân vào lá chuối, gói hình chóp.", "Hấp 30 phút."},
		Macros:      models.Macros{Calories: 330, Protein: 11, Fat: 13, Carbs: 42},
	},
	{
		Name: "Bún bò Huế", Slot: models.SlotBreakfast, Region: models.RegionCentral,
		Description: "Bún sợi to, nước dùng sả ớt cay nồng với bắp bò và giò heo.",
		Ingredients: []ing{{Name: "Bún", Amount: "200g"}, {Name: "Thịt bò", Amount: "80g"}, {Name: "Sả", Amount: "20g"}, {Name: "Mắm ruốc", Amount: "1 tsp"}},
		Preparation: []string{"Hầm xương với sả đập dập.", "Nêm mắm ruốc và sa tế.", "Trụng bún, xếp thịt bò và chan nước dùng."},
		Macros:      models.Macros{Calories: 500, Protein: 27, Fat: 15, Carbs: 64},
	},
	{
		Name: "Mì Quảng", Slot: models.SlotBreakfast, Region: models.RegionCentral,
		Description: "Mì sợi vàng với ít nước dùng đậm, tôm thịt và bánh tráng nướng.",
		Ingredients: []ing{{Name: "Mì Quảng", Amount: "150g"}, {Name: "Tôm", Amount: "50g"}, {Name: "Thịt heo", Amount: "50g"}, {Name: "Đậu phộng", Amount: "10g"}},
		Preparation: []string{"Xào tôm thịt với nghệ và hành tím.", "Thêm ít nước, nấu sánh.", "Chan lên mì, rắc đậu phộng, ăn với bánh tráng."},
		Macros:      models.Macros{Calories: 480, Protein: 24, Fat: 14, Carbs: 64},
	},
	{
		Name: "Yến mạch sữa chuối", Slot: models.SlotBreakfast, Region: models.RegionForeign,
		Description: "Yến mạch nấu sữa tươi với chuối chín.",
		Ingredients: []ing{{Name: "Yến mạch", Amount: "50g"}, {Name: "Sữa tươi", Amount: "200ml"}, {Name: "Chuối", Amount: "1 quả"}},
		Preparation: []string{"Đun sữa với yến mạch 5 phút.", "Cắt chuối lát mỏng.", "Cho chuối lên trên và dùng nóng."},
		Macros:      models.Macros{Calories: 320, Protein: 10, Fat: 7, Carbs: 54},
	},
	{
		Name: "Bánh canh cá lóc", Slot: models.SlotBreakfast, Region: models.RegionCentral,
		Description: "Sợi bánh canh bột gạo trong nước dùng cá lóc.",
		Ingredients: []ing{{Name: "Bánh canh", Amount: "200g"}, {Name: "Cá lóc", Amount: "100g"}, {Name: "Hành lá", Amount: "10g"}},
		Preparation: []string{"Luộc cá lóc, gỡ thịt, ướp nước mắm tiêu.", "Nấu nước luộc cá với bánh canh.", "Cho thịt cá vào, rắc hành tiêu."},
		Macros:      models.Macros{Calories: 400, Protein: 22, Fat: 9, Carbs: 57},
	},
	{
		Name: "Xôi đậu xanh", Slot: models.SlotBreakfast, Region: models.RegionNorth,
		Description: "Xôi nếp đồ cùng đậu xanh, rắc muối vừng.",
		Ingredients: []ing{{Name: "Gạo nếp", Amount: "90g"}, {Name: "Đậu xanh", Amount: "30g"}, {Name: "Vừng", Amount: "5g"}},
		Preparation: []string{"Ngâm nếp và đậu xanh 4 giờ.", "Trộn đều rồi đồ chín.", "Rắc muối vừng khi ăn."},
		Macros:      models.Macros{Calories: 380, Protein: 9, Fat: 8, Carbs: 67},
	},

	/* =================================================================================
									LUNCH
	=================================================================================*/
	{
		Name: "Cơm tấm sườn bì", Slot: models.SlotLunch, Region: models.RegionSouth,
		Description: "Cơm tấm với sườn nướng, bì và mỡ hành.",
		Ingredients: []ing{{Name: "Cơm tấm", Amount: "1 bát"}, {Name: "Sườn heo", Amount: "120g"}, {Name: "Bì heo", Amount: "20g"}, {Name: "Dưa leo", Amount: "30g"}},
		Preparation: []string{"Ướp sườn với sả, tỏi, mật ong rồi nướng than.", "Trộn bì với thính.", "Dọn cơm cùng sườn, bì và nước mắm chua ngọt."},
		Macros:      models.Macros{Calories: 600, Protein: 30, Fat: 20, Carbs: 75},
	},
	{
		Name: "Bún chả Hà Nội", Slot: models.SlotLunch, Region: models.RegionNorth,
		Description: "Chả viên và thịt ba chỉ nướng than ăn với bún và nước chấm.",
		Ingredients: []ing{{Name: "Bún", Amount: "200g"}, {Name: "Thịt heo", Amount: "120g"}, {Name: "Đu đủ xanh", Amount: "50g"}, {Name: "Nước mắm", Amount: "1 tbsp"}},
		Preparation: []string{"Ướp thịt với hành, nước mắm, đường.", "Nướng chả trên than hoa.", "Thả chả vào nước chấm, ăn kèm bún và rau sống."},
		Macros:      models.Macros{Calories: 550, Protein: 25, Fat: 20, Carbs: 68},
	},
	{
		Name: "Cơm gà Hội An", Slot: models.SlotLunch, Region: models.RegionCentral,
		Description: "Cơm nấu nước gà vàng nghệ, gà xé trộn rau răm.",
		Ingredients: []ing{{Name: "Gạo", Amount: "100g"}, {Name: "Thịt gà", Amount: "120g"}, {Name: "Rau răm", Amount: "10g"}, {Name: "Hành tây", Amount: "30g"}},
		Preparation: []string{"Luộc gà, lấy nước nấu cơm với nghệ.", "Xé gà trộn hành tây và rau răm.", "Dọn cơm với gà và tương ớt."},
		Macros:      models.Macros{Calories: 550, Protein: 30, Fat: 14, Carbs: 75},
	},
	{
		Name: "Cơm cá kho tộ", Slot: models.SlotLunch, Region: models.RegionSouth,
		Description: "Cá basa kho tộ đậm đà ăn với cơm trắng.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Cá basa", Amount: "150g"}, {Name: "Nước mắm", Amount: "1 tbsp"}, {Name: "Đường", Amount: "1 tsp"}},
		Preparation: []string{"Thắng nước màu, ướp cá 15 phút.", "Kho cá lửa nhỏ đến khi sệt.", "Rắc tiêu, ăn cùng cơm nóng."},
		Macros:      models.Macros{Calories: 560, Protein: 28, Fat: 15, Carbs: 78},
	},
	{
		Name: "Cơm thịt kho trứng", Slot: models.SlotLunch, Region: models.RegionSouth,
		Description: "Thịt ba chỉ kho nước dừa với trứng vịt.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Thịt heo", Amount: "100g"}, {Name: "Trứng vịt", Amount: "1 quả"}, {Name: "Nước dừa", Amount: "100ml"}},
		Preparation: []string{"Chần thịt, ướp nước mắm đường.", "Kho thịt với nước dừa, thả trứng luộc vào.", "Kho đến khi nước sánh màu cánh gián."},
		Macros:      models.Macros{Calories: 650, Protein: 30, Fat: 26, Carbs: 74},
	},
	{
		Name: "Bún thịt nướng", Slot: models.SlotLunch, Region: models.RegionSouth,
		Description: "Bún tươi với thịt heo nướng sả, rau sống và đậu phộng.",
		Ingredients: []ing{{Name: "Bún", Amount: "200g"}, {Name: "Thịt heo", Amount: "100g"}, {Name: "Đậu phộng", Amount: "10g"}, {Name: "Rau sống", Amount: "50g"}},
		Preparation: []string{"Ướp thịt với sả và mật ong.", "Nướng thịt đến khi xém cạnh.", "Xếp bún, rau, thịt, rưới mỡ hành và nước mắm."},
		Macros:      models.Macros{Calories: 520, Protein: 24, Fat: 16, Carbs: 70},
	},
	{
		Name: "Cao lầu", Slot: models.SlotLunch, Region: models.RegionCentral,
		Description: "Sợi mì dai với xá xíu và rau Trà Quế.",
		Ingredients: []ing{{Name: "Sợi cao lầu", Amount: "150g"}, {Name: "Thịt heo", Amount: "80g"}, {Name: "Giá đỗ", Amount: "30g"}, {Name: "Rau thơm", Amount: "20g"}},
		Preparation: []string{"Ướp và rim thịt xá xíu.", "Trụng sợi cao lầu và giá.", "Xếp thịt, rau, rưới ít nước xá xíu."},
		Macros:      models.Macros{Calories: 470, Protein: 24, Fat: 14, Carbs: 62},
	},
	{
		Name: "Cơm rang dưa bò", Slot: models.SlotLunch, Region: models.RegionNorth,
		Description: "Cơm rang tơi với dưa cải chua và thịt bò xào.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Thịt bò", Amount: "100g"}, {Name: "Dưa cải", Amount: "50g"}, {Name: "Dầu ăn", Amount: "1 tbsp"}},
		Preparation: []string{"Xào bò tái, để riêng.", "Rang cơm với dưa cải trên lửa lớn.", "Cho bò vào đảo đều, nêm vừa ăn."},
		Macros:      models.Macros{Calories: 620, Protein: 28, Fat: 22, Carbs: 78},
	},
	{
		Name: "Miến gà", Slot: models.SlotLunch, Region: models.RegionNorth,
		Description: "Miến dong trong nước dùng gà thanh, thêm nấm hương.",
		Ingredients: []ing{{Name: "Miến", Amount: "70g"}, {Name: "Thịt gà", Amount: "120g"}, {Name: "Nấm", Amount: "20g"}, {Name: "Hành lá", Amount: "10g"}},
		Preparation: []string{"Luộc gà lấy nước dùng.", "Ngâm miến mềm, trụng qua nước sôi.", "Xếp gà xé, nấm và chan nước dùng."},
		Macros:      models.Macros{Calories: 450, Protein: 25, Fat: 10, Carbs: 64},
	},
	{
		Name: "Cơm lam gà nướng", Slot: models.SlotLunch, Region: models.RegionHighlander,
		Description: "Cơm nếp nướng ống tre ăn cùng gà nướng muối ớt.",
		Ingredients: []ing{{Name: "Gạo nếp", Amount: "100g"}, {Name: "Thịt gà", Amount: "150g"}, {Name: "Muối ớt", Amount: "1 tsp"}},
		Preparation: []string{"Cho nếp vào ống tre, nướng đến khi chín.", "Ướp gà muối ớt, nướng than.", "Chẻ ống tre, ăn cơm lam với gà."},
		Macros:      models.Macros{Calories: 650, Protein: 38, Fat: 20, Carbs: 78},
	},
	{
		Name: "Bún cá", Slot: models.SlotLunch, Region: models.RegionNorth,
		Description: "Bún với cá chiên giòn, thì là và cà chua.",
		Ingredients: []ing{{Name: "Bún", Amount: "200g"}, {Name: "Cá lóc", Amount: "120g"}, {Name: "Cà chua", Amount: "50g"}, {Name: "Thì là", Amount: "10g"}},
		Preparation: []string{"Chiên cá đến khi vàng giòn.", "Nấu nước dùng với cà chua.", "Chan lên bún, thêm cá và thì là."},
		Macros:      models.Macros{Calories: 480, Protein: 26, Fat: 10, Carbs: 70},
	},
	{
		Name: "Cơm đậu phụ sốt cà chua", Slot: models.SlotLunch, Region: models.RegionNorth,
		Description: "Đậu phụ rán sốt cà chua hành lá ăn với cơm.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Đậu phụ", Amount: "150g"}, {Name: "Cà chua", Amount: "100g"}, {Name: "Dầu ăn", Amount: "1 tbsp"}},
		Preparation: []string{"Rán đậu phụ vàng đều các mặt.", "Xào cà chua nhừ, nêm nước mắm.", "Cho đậu vào rim 5 phút, rắc hành."},
		Macros:      models.Macros{Calories: 520, Protein: 20, Fat: 16, Carbs: 74},
	},
	{
		Name: "Cơm chiên hải sản", Slot: models.SlotLunch, Region: models.RegionSouth,
		Description: "Cơm chiên với tôm, mực và rau củ.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Tôm", Amount: "60g"}, {Name: "Mực", Amount: "60g"}, {Name: "Cà rốt", Amount: "30g"}},
		Preparation: []string{"Xào tôm mực chín tới.", "Chiên cơm với trứng và cà rốt.", "Trộn hải sản vào cơm, nêm nước tương."},
		Macros:      models.Macros{Calories: 640, Protein: 24, Fat: 22, Carbs: 86},
	},
	{
		Name: "Bò lúc lắc cơm trắng", Slot: models.SlotLunch, Region: models.RegionSouth,
		Description: "Thịt bò cắt khối xào lửa lớn với ớt chuông, ăn cùng cơm.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Thịt bò", Amount: "150g"}, {Name: "Ớt chuông", Amount: "50g"}, {Name: "Bơ lạt", Amount: "10g"}},
		Preparation: []string{"Ướp bò với tỏi, dầu hào.", "Áp chảo bò lửa lớn, lắc đều.", "Thêm ớt chuông, hành tây, dọn với cơm."},
		Macros:      models.Macros{Calories: 680, Protein: 36, Fat: 26, Carbs: 74},
	},

	/* =================================================================================
									DINNER
	=================================================================================*/
	{
		Name: "Canh chua cá lóc với cơm", Slot: models.SlotDinner, Region: models.RegionSouth,
		Description: "Canh chua me với cá lóc, dứa, đậu bắp và cơm trắng.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Cá lóc", Amount: "120g"}, {Name: "Cà chua", Amount: "50g"}, {Name: "Giá đỗ", Amount: "30g"}},
		Preparation: []string{"Nấu nước me chua.", "Cho cá và rau vào nấu chín.", "Nêm chua ngọt, rắc ngò om, ăn cùng cơm."},
		Macros:      models.Macros{Calories: 520, Protein: 28, Fat: 10, Carbs: 78},
	},
	{
		Name: "Gà nướng sả với cơm", Slot: models.SlotDinner, Region: models.RegionCentral,
		Description: "Đùi gà ướp sả ớt nướng thơm, ăn kèm cơm và dưa leo.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Thịt gà", Amount: "150g"}, {Name: "Sả", Amount: "20g"}, {Name: "Dưa leo", Amount: "50g"}},
		Preparation: []string{"Ướp gà với sả, tỏi, nước mắm 30 phút.", "Nướng gà ở 200°C trong 25 phút.", "Dọn với cơm và dưa leo."},
		Macros:      models.Macros{Calories: 600, Protein: 38, Fat: 20, Carbs: 66},
	},
	{
		Name: "Rau muống xào tỏi với cơm", Slot: models.SlotDinner, Region: models.RegionNorth,
		Description: "Rau muống xào tỏi giòn xanh ăn với cơm và trứng luộc.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Rau muống", Amount: "200g"}, {Name: "Tỏi", Amount: "3 tép"}, {Name: "Trứng gà", Amount: "1 quả"}},
		Preparation: []string{"Nhặt và rửa rau muống.", "Phi thơm tỏi, xào rau lửa lớn.", "Dọn với cơm và trứng luộc."},
		Macros:      models.Macros{Calories: 420, Protein: 10, Fat: 10, Carbs: 72},
	},
	{
		Name: "Cá thu sốt cà chua với cơm", Slot: models.SlotDinner, Region: models.RegionNorth,
		Description: "Cá thu rán sốt cà chua đậm vị.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Cá thu", Amount: "120g"}, {Name: "Cà chua", Amount: "100g"}, {Name: "Dầu ăn", Amount: "1 tsp"}},
		Preparation: []string{"Rán cá thu vàng hai mặt.", "Xào cà chua thành sốt.", "Rim cá trong sốt 5 phút."},
		Macros:      models.Macros{Calories: 560, Protein: 30, Fat: 18, Carbs: 70},
	},
	{
		Name: "Đậu phụ nhồi thịt", Slot: models.SlotDinner, Region: models.RegionNorth,
		Description: "Đậu phụ nhồi thịt băm sốt cà chua, ăn với cơm.",
		Ingredients: []ing{{Name: "Đậu phụ", Amount: "200g"}, {Name: "Thịt heo", Amount: "80g"}, {Name: "Cà chua", Amount: "80g"}, {Name: "Cơm trắng", Amount: "100g"}},
		Preparation: []string{"Khoét ruột đậu, nhồi thịt băm.", "Rán đậu vàng đều.", "Rim với sốt cà chua đến khi thấm."},
		Macros:      models.Macros{Calories: 480, Protein: 26, Fat: 22, Carbs: 44},
	},
	{
		Name: "Canh bí đỏ nấu tôm với cơm", Slot: models.SlotDinner, Region: models.RegionNorth,
		Description: "Canh bí đỏ ngọt bùi nấu tôm tươi, dùng với cơm.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Bí đỏ", Amount: "150g"}, {Name: "Tôm", Amount: "80g"}},
		Preparation: []string{"Gọt bí, cắt miếng vừa ăn.", "Xào tôm rồi đổ nước nấu cùng bí.", "Nấu đến khi bí mềm, nêm vừa ăn."},
		Macros:      models.Macros{Calories: 450, Protein: 22, Fat: 8, Carbs: 72},
	},
	{
		Name: "Gà kho gừng với cơm", Slot: models.SlotDinner, Region: models.RegionNorth,
		Description: "Thịt gà kho gừng cay ấm, ăn với cơm nóng.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Thịt gà", Amount: "150g"}, {Name: "Gừng", Amount: "20g"}, {Name: "Nước mắm", Amount: "1 tbsp"}},
		Preparation: []string{"Ướp gà với gừng, nước mắm.", "Kho lửa nhỏ 20 phút.", "Rim đến khi nước sánh."},
		Macros:      models.Macros{Calories: 580, Protein: 34, Fat: 18, Carbs: 68},
	},
	{
		Name: "Mực xào thập cẩm với cơm", Slot: models.SlotDinner, Region: models.RegionCentral,
		Description: "Mực tươi xào cần tây, cà rốt, hành tây.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Mực", Amount: "150g"}, {Name: "Cà rốt", Amount: "40g"}, {Name: "Hành tây", Amount: "40g"}},
		Preparation: []string{"Khứa mực, chần sơ.", "Xào rau củ chín tới.", "Cho mực vào đảo nhanh tay, nêm vừa ăn."},
		Macros:      models.Macros{Calories: 500, Protein: 26, Fat: 12, Carbs: 72},
	},
	{
		Name: "Bánh xèo", Slot: models.SlotDinner, Region: models.RegionSouth,
		Description: "Bánh xèo giòn nhân tôm thịt giá đỗ, cuốn rau sống.",
		Ingredients: []ing{{Name: "Bột gạo", Amount: "80g"}, {Name: "Tôm", Amount: "50g"}, {Name: "Thịt heo", Amount: "50g"}, {Name: "Giá đỗ", Amount: "50g"}},
		Preparation: []string{"Pha bột với nghệ và nước cốt dừa.", "Đổ bánh trên chảo nóng, thêm nhân.", "Gập đôi bánh, cuốn với rau sống chấm nước mắm."},
		Macros:      models.Macros{Calories: 480, Protein: 15, Fat: 24, Carbs: 52},
	},
	{
		Name: "Gỏi cuốn tôm thịt", Slot: models.SlotDinner, Region: models.RegionSouth,
		Description: "Bánh tráng cuốn tôm, thịt luộc, bún và rau thơm.",
		Ingredients: []ing{{Name: "Bánh tráng", Amount: "4 cái"}, {Name: "Tôm", Amount: "80g"}, {Name: "Thịt heo", Amount: "60g"}, {Name: "Bún", Amount: "100g"}},
		Preparation: []string{"Luộc tôm và thịt, thái mỏng.", "Nhúng bánh tráng, xếp rau, bún, tôm thịt.", "Cuốn chặt tay, chấm tương đậu phộng."},
		Macros:      models.Macros{Calories: 400, Protein: 22, Fat: 8, Carbs: 58},
	},
	{
		Name: "Thịt luộc chấm mắm với cơm", Slot: models.SlotDinner, Region: models.RegionNorth,
		Description: "Thịt heo luộc thái mỏng chấm mắm tỏi ớt, ăn với cơm và rau luộc.",
		Ingredients: []ing{{Name: "Cơm trắng", Amount: "1 bát"}, {Name: "Thịt heo", Amount: "120g"}, {Name: "Cải xanh", Amount: "100g"}},
		Preparation: []string{"Luộc thịt với hành tím đập dập.", "Luộc cải xanh.", "Thái thịt, pha nước mắm tỏi ớt."},
		Macros:      models.Macros{Calories: 520, Protein: 30, Fat: 20, Carbs: 55},
	},
	{
		Name: "Lẩu nấm chay", Slot: models.SlotDinner, Region: models.RegionSouth,
		Description: "Lẩu nấm các loại với đậu phụ và rau cải, ăn kèm bún.",
		Ingredients: []ing{{Name: "Nấm", Amount: "200g"}, {Name: "Đậu phụ", Amount: "100g"}, {Name: "Cải thảo", Amount: "100g"}, {Name: "Bún", Amount: "150g"}},
		Preparation: []string{"Nấu nước dùng rau củ.", "Cho nấm, đậu, cải vào nhúng.", "Ăn kèm bún."},
		Macros:      models.Macros{Calories: 420, Protein: 18, Fat: 12, Carbs: 60},
	},
	{
		Name: "Cháo cá", Slot: models.SlotDinner, Region: models.RegionNorth,
		Description: "Cháo trắng nấu cá lóc, thì là và gừng.",
		Ingredients: []ing{{Name: "Gạo", Amount: "60g"}, {Name: "Cá lóc", Amount: "120g"}, {Name: "Thì là", Amount: "10g"}, {Name: "Gừng", Amount: "5g"}},
		Preparation: []string{"Nấu gạo thành cháo nhừ.", "Cá hấp gừng, gỡ lấy thịt.", "Cho cá vào cháo, nêm và rắc thì là."},
		Macros:      models.Macros{Calories: 400, Protein: 24, Fat: 8, Carbs: 56},
	},
	{
		Name: "Gà nướng mắc khén", Slot: models.SlotDinner, Region: models.RegionHighlander,
		Description: "Gà đồi ướp mắc khén Tây Bắc nướng than, ăn với xôi.",
		Ingredients: []ing{{Name: "Thịt gà", Amount: "150g"}, {Name: "Mắc khén", Amount: "5g"}, {Name: "Xôi", Amount: "100g"}},
		Preparation: []string{"Giã mắc khén với sả, ớt.", "Ướp gà 1 giờ rồi nướng than.", "Dọn cùng xôi và chẩm chéo."},
		Macros:      models.Macros{Calories: 560, Protein: 36, Fat: 24, Carbs: 48},
	},
}
