package models

// StaticProduct is an entry in the hardcoded catalog of regional crop
// varieties used by the AI description endpoint. It is unrelated to the
// database-backed Product catalog and is keyed by a small integer id.
type StaticProduct struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// ProductDetails combines a static record with the generated long-form
// description. Cached per id for the process lifetime.
type ProductDetails struct {
	Id           int    `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Description  string `json:"description"`
	DetailedInfo string `json:"detailed_info"`
}

// StaticCatalog mirrors the variety list shown by the frontend.
var StaticCatalog = []StaticProduct{
	{Id: 1, Name: "Moovandan", Type: "Mango", Image: "https://www.fortheloveofnature.in/cdn/shop/products/Mangiferaindica-Moovandan_Mango_1_823x.jpg?v=1640246605", Description: "A Popular Early-Bearing Variety"},
	{Id: 2, Name: "Kilichundan Mango", Type: "Mango", Image: "https://www.greensofkerala.com/wp-content/uploads/2021/04/kilichundan-manga-2.gif", Description: "The Parrot-Beak Mango with a Tangy-Sweet Flavor"},
	{Id: 3, Name: "Neelum", Type: "Mango", Image: "https://tropicaltreeguide.com/wp-content/uploads/2023/04/Mango_Neelum_Fruit_IG_Botanical_Diversity_3-1024x1014.jpg", Description: "A High-Yielding and Disease-Resistant Variety of Mango"},
	{Id: 4, Name: "Alphonso", Type: "Mango", Image: "https://seed2plant.in/cdn/shop/files/AlphonsoMangoGraftedLivePlant.jpg?v=1689071379&width=1100", Description: "The King of Mangoes"},
	{Id: 5, Name: "Cowpea", Type: "Bean", Image: "https://seed2plant.in/cdn/shop/products/cowpeaseeds.jpg?v=1603962956&width=1780", Description: "Drought-tolerant legume"},
	{Id: 6, Name: "Yardlong Bean", Type: "Bean", Image: "https://m.media-amazon.com/images/I/61GCtRXQUNL.jpg", Description: "Locally known as Achinga Payar is a popular vegetable characterized by its slender, elongated pods"},
	{Id: 7, Name: "Winged Bean", Type: "Bean", Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTyx8m47r2uid8bsBjhInQs9nlpFmuBXKfT6w&s", Description: "Locally known as Kaippayar, this nutrient-rich bean is characterized by its winged edges and high protein content."},
	{Id: 8, Name: "Sword Bean", Type: "Bean", Image: "https://goldenhillsfarm.in/media/product_images/sward-beans.jpg", Description: "Known as Valpayar, this variety has thick, broad pods and is often used in traditional Kerala dishes."},
	{Id: 9, Name: "Nendran", Type: "Banana", Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQqNbKet5tI1Uh_bAZgjTNB0RPSInNnPKkN8A&s", Description: "A prominent variety in Kerala, Nendran bananas are large, firm, and slightly sweet"},
	{Id: 10, Name: "Chengalikodan Nendran", Type: "Banana", Image: "https://www.gikerala.in/images/products/Chengalikkodan_Nendran-Banana-4.webp", Description: "Originating from the Chengazhikodu village in Thrissur District, this variety is renowned for its unique taste and vibrant color."},
	{Id: 11, Name: "Matti Pazham", Type: "Banana", Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcT9r6XZqXhdCNS3xpTSTkoVXHbo38K_Q1K__g&s", Description: "Known for its fragrant aroma and honey-like taste, this small-sized banana is cherished for its unique flavor profile."},
	{Id: 12, Name: "Poovan", Type: "Banana", Image: "https://upload.wikimedia.org/wikipedia/commons/thumb/b/ba/Kerala_Banana_-_Poovan_Pazham-1.jpg/1200px-Kerala_Banana_-_Poovan_Pazham-1.jpg?20110717070644", Description: "A popular dessert banana, Poovan is medium-sized with a thin skin and sweet flesh."},
}

// FindStaticProduct returns the catalog entry for id, if any.
func FindStaticProduct(id int) (StaticProduct, bool) {
	for _, p := range StaticCatalog {
		if p.Id == id {
			return p, true
		}
	}
	return StaticProduct{}, false
}
