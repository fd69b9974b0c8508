package nutrition

import "NutriViet_V1.0/internal/models"

// Per 100 g, edible portion. Values follow the Vietnamese food composition
// table (Viện Dinh dưỡng, 2017) rounded to one decimal.
var ingredientsPer100g = map[string]models.Macros{
	// Meat
	"thịt bò":        {Calories: 187, Protein: 26, Fat: 9, Carbs: 0, Sodium: 60},
	"thịt heo":       {Calories: 242, Protein: 27, Fat: 14, Carbs: 0, Sodium: 62},
	"thịt lợn":       {Calories: 242, Protein: 27, Fat: 14, Carbs: 0, Sodium: 62},
	"thịt ba chỉ":    {Calories: 518, Protein: 9, Fat: 53, Carbs: 0, Sodium: 32},
	"sườn heo":       {Calories: 277, Protein: 17.9, Fat: 23, Carbs: 0, Sodium: 70},
	"thịt gà":        {Calories: 190, Protein: 27, Fat: 8, Carbs: 0, Sodium: 82},
	"ức gà":          {Calories: 165, Protein: 31, Fat: 3.6, Carbs: 0, Sodium: 74},
	"thịt vịt":       {Calories: 337, Protein: 19, Fat: 28, Carbs: 0, Sodium: 59},
	"chả lụa":        {Calories: 190, Protein: 14, Fat: 14, Carbs: 2, Sodium: 800},
	"beef":           {Calories: 187, Protein: 26, Fat: 9, Carbs: 0, Sodium: 60},
	"pork":           {Calories: 242, Protein: 27, Fat: 14, Carbs: 0, Sodium: 62},
	"chicken":        {Calories: 190, Protein: 27, Fat: 8, Carbs: 0, Sodium: 82},
	"chicken breast": {Calories: 165, Protein: 31, Fat: 3.6, Carbs: 0, Sodium: 74},

	// Seafood and eggs
	"cá hồi":    {Calories: 208, Protein: 20, Fat: 13, Carbs: 0, Sodium: 59},
	"cá basa":   {Calories: 120, Protein: 18, Fat: 5, Carbs: 0, Sodium: 50},
	"cá thu":    {Calories: 166, Protein: 18.2, Fat: 10.3, Carbs: 0, Sodium: 90},
	"cá lóc":    {Calories: 97, Protein: 18.2, Fat: 2.7, Carbs: 0, Sodium: 56},
	"tôm":       {Calories: 99, Protein: 24, Fat: 0.3, Carbs: 0.2, Sodium: 111},
	"mực":       {Calories: 92, Protein: 16, Fat: 1.4, Carbs: 3, Sodium: 44},
	"cua":       {Calories: 97, Protein: 19, Fat: 1.5, Carbs: 0, Sodium: 293},
	"nghêu":     {Calories: 86, Protein: 15, Fat: 1, Carbs: 3, Sodium: 56},
	"trứng gà":  {Calories: 155, Protein: 13, Fat: 11, Carbs: 1.1, Sodium: 124},
	"trứng":     {Calories: 155, Protein: 13, Fat: 11, Carbs: 1.1, Sodium: 124},
	"trứng vịt": {Calories: 185, Protein: 13, Fat: 14, Carbs: 1, Sodium: 146},
	"salmon":    {Calories: 208, Protein: 20, Fat: 13, Carbs: 0, Sodium: 59},
	"shrimp":    {Calories: 99, Protein: 24, Fat: 0.3, Carbs: 0.2, Sodium: 111},
	"egg":       {Calories: 155, Protein: 13, Fat: 11, Carbs: 1.1, Sodium: 124},

	// Soy
	"đậu phụ": {Calories: 76, Protein: 8, Fat: 4.8, Carbs: 1.9, Fiber: 0.3},
	"đậu hũ":  {Calories: 76, Protein: 8, Fat: 4.8, Carbs: 1.9, Fiber: 0.3},
	"tofu":    {Calories: 76, Protein: 8, Fat: 4.8, Carbs: 1.9, Fiber: 0.3},

	// Staples
	"gạo":         {Calories: 360, Protein: 7, Fat: 0.6, Carbs: 79, Fiber: 1.3},
	"gạo nếp":     {Calories: 370, Protein: 6.8, Fat: 0.6, Carbs: 81, Fiber: 1.4},
	"cơm":         {Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28, Fiber: 0.4},
	"cơm trắng":   {Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28, Fiber: 0.4},
	"xôi":         {Calories: 169, Protein: 3.5, Fat: 0.3, Carbs: 37, Fiber: 0.5},
	"bún":         {Calories: 110, Protein: 1.7, Fat: 0.2, Carbs: 25, Fiber: 0.5},
	"bánh phở":    {Calories: 109, Protein: 1.8, Fat: 0.2, Carbs: 25, Fiber: 0.5},
	"mì":          {Calories: 138, Protein: 4.5, Fat: 2, Carbs: 25, Fiber: 1.2},
	"miến":        {Calories: 351, Protein: 0.2, Fat: 0.1, Carbs: 86, Fiber: 0.5},
	"bánh mì":     {Calories: 265, Protein: 9, Fat: 3.2, Carbs: 49, Fiber: 2.7, Sodium: 490},
	"khoai lang":  {Calories: 86, Protein: 1.6, Fat: 0.1, Carbs: 20, Fiber: 3},
	"khoai tây":   {Calories: 77, Protein: 2, Fat: 0.1, Carbs: 17, Fiber: 2.2},
	"yến mạch":    {Calories: 389, Protein: 17, Fat: 7, Carbs: 66, Fiber: 10.6},
	"ngô":         {Calories: 96, Protein: 3.4, Fat: 1.5, Carbs: 21, Fiber: 2.4},
	"rice":        {Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28, Fiber: 0.4},
	"cooked rice": {Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28, Fiber: 0.4},
	"bread":       {Calories: 265, Protein: 9, Fat: 3.2, Carbs: 49, Fiber: 2.7, Sodium: 490},
	"oats":        {Calories: 389, Protein: 17, Fat: 7, Carbs: 66, Fiber: 10.6},

	// Vegetables and fruit
	"rau muống": {Calories: 19, Protein: 2.6, Fat: 0.2, Carbs: 3.1, Fiber: 2.1},
	"cải xanh":  {Calories: 25, Protein: 2.5, Fat: 0.3, Carbs: 4, Fiber: 1.8},
	"cải thảo":  {Calories: 16, Protein: 1.2, Fat: 0.2, Carbs: 3.2, Fiber: 1.2},
	"bắp cải":   {Calories: 25, Protein: 1.3, Fat: 0.1, Carbs: 5.8, Fiber: 2.5},
	"cà chua":   {Calories: 18, Protein: 0.9, Fat: 0.2, Carbs: 3.9, Fiber: 1.2},
	"dưa leo":   {Calories: 15, Protein: 0.7, Fat: 0.1, Carbs: 3.6, Fiber: 0.5},
	"giá đỗ":    {Calories: 30, Protein: 3, Fat: 0.2, Carbs: 6, Fiber: 1.8},
	"hành tây":  {Calories: 40, Protein: 1.1, Fat: 0.1, Carbs: 9.3, Fiber: 1.7},
	"bí đỏ":     {Calories: 26, Protein: 1, Fat: 0.1, Carbs: 6.5, Fiber: 0.5},
	"cà rốt":    {Calories: 41, Protein: 0.9, Fat: 0.2, Carbs: 9.6, Fiber: 2.8},
	"nấm":       {Calories: 22, Protein: 3.1, Fat: 0.3, Carbs: 3.3, Fiber: 1},
	"đậu xanh":  {Calories: 347, Protein: 24, Fat: 1.2, Carbs: 63, Fiber: 16},
	"chuối":     {Calories: 89, Protein: 1.1, Fat: 0.3, Carbs: 23, Fiber: 2.6, Sugar: 12},
	"bơ":        {Calories: 160, Protein: 2, Fat: 15, Carbs: 9, Fiber: 6.7},
	"đậu phộng": {Calories: 567, Protein: 26, Fat: 49, Carbs: 16, Fiber: 8.5},
	"tomato":    {Calories: 18, Protein: 0.9, Fat: 0.2, Carbs: 3.9, Fiber: 1.2},
	"banana":    {Calories: 89, Protein: 1.1, Fat: 0.3, Carbs: 23, Fiber: 2.6, Sugar: 12},

	// Dairy, fats and seasoning
	"sữa tươi": {Calories: 61, Protein: 3.2, Fat: 3.3, Carbs: 4.8, Sugar: 4.8},
	"sữa chua": {Calories: 61, Protein: 3.5, Fat: 3.3, Carbs: 4.7, Sugar: 4.7},
	"milk":     {Calories: 61, Protein: 3.2, Fat: 3.3, Carbs: 4.8, Sugar: 4.8},
	"dầu ăn":   {Calories: 884, Protein: 0, Fat: 100, Carbs: 0},
	"dầu oliu": {Calories: 884, Protein: 0, Fat: 100, Carbs: 0},
	"oil":      {Calories: 884, Protein: 0, Fat: 100, Carbs: 0},
	"nước mắm": {Calories: 35, Protein: 5, Fat: 0, Carbs: 3.6, Sodium: 7800},
	"đường":    {Calories: 387, Protein: 0, Fat: 0, Carbs: 100, Sugar: 100},
	"nước dừa": {Calories: 19, Protein: 0.7, Fat: 0.2, Carbs: 3.7, Sugar: 2.6},
}

// Per typical serving.
var dishesPerServing = map[string]models.Macros{
	"phở bò":              {Calories: 450, Protein: 25, Fat: 12, Carbs: 60},
	"phở gà":              {Calories: 400, Protein: 24, Fat: 8, Carbs: 58},
	"bún chả":             {Calories: 550, Protein: 25, Fat: 20, Carbs: 68},
	"bún bò huế":          {Calories: 500, Protein: 27, Fat: 15, Carbs: 64},
	"bún riêu":            {Calories: 420, Protein: 20, Fat: 12, Carbs: 58},
	"cơm tấm":             {Calories: 600, Protein: 30, Fat: 20, Carbs: 75},
	"cơm gà":              {Calories: 550, Protein: 30, Fat: 14, Carbs: 75},
	"bánh mì":             {Calories: 400, Protein: 15, Fat: 14, Carbs: 53},
	"bánh mì chay":        {Calories: 350, Protein: 12, Fat: 10, Carbs: 53},
	"bánh cuốn":           {Calories: 320, Protein: 12, Fat: 8, Carbs: 50},
	"bánh xèo":            {Calories: 480, Protein: 15, Fat: 24, Carbs: 52},
	"xôi xéo":             {Calories: 450, Protein: 10, Fat: 14, Carbs: 72},
	"cháo gà":             {Calories: 300, Protein: 18, Fat: 6, Carbs: 44},
	"hủ tiếu":             {Calories: 420, Protein: 20, Fat: 10, Carbs: 62},
	"mì quảng":            {Calories: 480, Protein: 24, Fat: 14, Carbs: 64},
	"cao lầu":             {Calories: 470, Protein: 24, Fat: 14, Carbs: 62},
	"cơm lam":             {Calories: 300, Protein: 5, Fat: 1, Carbs: 68},
	"gỏi cuốn":            {Calories: 200, Protein: 10, Fat: 4, Carbs: 30},
	"canh chua cá":        {Calories: 180, Protein: 18, Fat: 5, Carbs: 15},
	"canh bí đỏ":          {Calories: 120, Protein: 6, Fat: 4, Carbs: 15},
	"cá kho tộ":           {Calories: 250, Protein: 24, Fat: 14, Carbs: 8},
	"thịt kho trứng":      {Calories: 420, Protein: 26, Fat: 30, Carbs: 10},
	"rau muống xào tỏi":   {Calories: 110, Protein: 3, Fat: 8, Carbs: 7},
	"bò lúc lắc":          {Calories: 380, Protein: 30, Fat: 24, Carbs: 10},
	"gà nướng":            {Calories: 350, Protein: 35, Fat: 22, Carbs: 2},
	"đậu phụ sốt cà chua": {Calories: 200, Protein: 12, Fat: 12, Carbs: 10},
	"chè đậu xanh":        {Calories: 250, Protein: 6, Fat: 3, Carbs: 50},
}
