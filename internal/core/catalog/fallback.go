package catalog

import "github.com/quocthai179/my-succulent-store/internal/core/models"

// Fallback is the bundled product set shown when the backend cannot be
// reached. It is substituted wholesale, never merged with partial remote
// results.
var Fallback = []models.Product{
	{
		ID:          1,
		Name:        "Sen đá Haworthia Zebra",
		Category:    "Haworthia",
		Description: "Lá sọc trắng nổi bật, phù hợp để bàn làm việc.",
		Price:       75000,
	},
	{
		ID:          2,
		Name:        "Sen đá Echeveria Blue",
		Category:    "Echeveria",
		Description: "Tán lá xanh phấn, dáng hoa thị sang trọng.",
		Price:       89000,
	},
	{
		ID:          3,
		Name:        "Chậu đất nung mini",
		Category:    "Chậu sen đá",
		Description: "Chậu đất nung thoát nước tốt, kích thước 10cm.",
		Price:       32000,
	},
	{
		ID:          4,
		Name:        "Đá trang trí trắng",
		Category:    "Đồ trang trí",
		Description: "Gói 500g đá trang trí bề mặt, sạch và đẹp.",
		Price:       25000,
	},
	{
		ID:          5,
		Name:        "Đất trộn sen đá",
		Category:    "Đất - phân bón - thuốc",
		Description: "Đất tơi xốp, giàu dinh dưỡng, thoát nước nhanh.",
		Price:       42000,
	},
}
