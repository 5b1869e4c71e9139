package repo

import "github.com/MorseWayne/mercado_shop/internal/domain"

// catalogCategories 演示目录的全部分类
var catalogCategories = []string{
	"electronics",
	"men's clothing",
	"women's clothing",
}

// catalogProducts 演示目录的静态商品数据，运行期间只读
var catalogProducts = []*domain.Product{
	{
		ID:          1,
		Title:       "iPhone 15 Pro Max - 256GB",
		Price:       1199.99,
		Description: "El iPhone más avanzado con chip A17 Pro, cámara ProRAW y pantalla Super Retina XDR de 6.7 pulgadas.",
		Category:    "electronics",
		Image:       "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400",
		Rating:      domain.Rating{Rate: 4.8, Count: 324},
	},
	{
		ID:          2,
		Title:       "Samsung Galaxy S24 Ultra",
		Price:       1099.99,
		Description: "Smartphone premium con S Pen integrado, cámara de 200MP y pantalla Dynamic AMOLED 2X.",
		Category:    "electronics",
		Image:       "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=400",
		Rating:      domain.Rating{Rate: 4.7, Count: 289},
	},
	{
		ID:          3,
		Title:       "Camiseta Premium Algodón",
		Price:       29.99,
		Description: "Camiseta 100% algodón orgánico, cómoda y duradera. Disponible en múltiples colores.",
		Category:    "men's clothing",
		Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
		Rating:      domain.Rating{Rate: 4.5, Count: 156},
	},
	{
		ID:          4,
		Title:       "Vestido Elegante de Verano",
		Price:       49.99,
		Description: "Vestido flojo y cómodo perfecto para el verano. Diseño moderno y elegante.",
		Category:    "women's clothing",
		Image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=400",
		Rating:      domain.Rating{Rate: 4.6, Count: 203},
	},
	{
		ID:          5,
		Title:       "MacBook Pro 16 pulgadas M3",
		Price:       2499.99,
		Description: "Potente laptop profesional con chip Apple M3, 16GB RAM y SSD de 512GB.",
		Category:    "electronics",
		Image:       "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=400",
		Rating:      domain.Rating{Rate: 4.9, Count: 445},
	},
	{
		ID:          6,
		Title:       "Auriculares Sony WH-1000XM5",
		Price:       399.99,
		Description: "Auriculares inalámbricos con cancelación de ruido líder y sonido Hi-Res.",
		Category:    "electronics",
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
		Rating:      domain.Rating{Rate: 4.8, Count: 567},
	},
	{
		ID:          7,
		Title:       "Chaqueta Denim Clásica",
		Price:       79.99,
		Description: "Chaqueta denim resistente y atemporal. Ideal para todas las temporadas.",
		Category:    "men's clothing",
		Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400",
		Rating:      domain.Rating{Rate: 4.4, Count: 178},
	},
	{
		ID:          8,
		Title:       "Bolso de Mano de Cuero",
		Price:       89.99,
		Description: "Bolso elegante de cuero genuino con múltiples compartimentos y diseño sofisticado.",
		Category:    "women's clothing",
		Image:       "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=400",
		Rating:      domain.Rating{Rate: 4.7, Count: 234},
	},
	{
		ID:          9,
		Title:       "Zapatillas Running Nike Air Max",
		Price:       129.99,
		Description: "Zapatillas deportivas de alto rendimiento con tecnología Air Max para máximo confort.",
		Category:    "men's clothing",
		Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400",
		Rating:      domain.Rating{Rate: 4.6, Count: 312},
	},
	{
		ID:          10,
		Title:       "Reloj Inteligente Apple Watch Series 9",
		Price:       429.99,
		Description: "Smartwatch con monitor de salud avanzado, GPS integrado y resistencia al agua.",
		Category:    "electronics",
		Image:       "https://images.unsplash.com/photo-1434493789847-2f02dc6ca35d?w=400",
		Rating:      domain.Rating{Rate: 4.7, Count: 423},
	},
	{
		ID:          11,
		Title:       "Falda Plisada Midi",
		Price:       39.99,
		Description: "Falda elegante plisada perfecta para oficina o ocasiones especiales.",
		Category:    "women's clothing",
		Image:       "https://images.unsplash.com/photo-1583496661160-fb588837bf93?w=400",
		Rating:      domain.Rating{Rate: 4.5, Count: 145},
	},
	{
		ID:          12,
		Title:       "Tablet iPad Air 11 pulgadas",
		Price:       599.99,
		Description: "Tablet versátil con chip M2, pantalla Liquid Retina y compatibilidad con Apple Pencil.",
		Category:    "electronics",
		Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400",
		Rating:      domain.Rating{Rate: 4.8, Count: 267},
	},
	{
		ID:          13,
		Title:       "Pantalones Chinos Clásicos",
		Price:       59.99,
		Description: "Pantalones chinos de corte clásico, cómodos y versátiles para cualquier ocasión.",
		Category:    "men's clothing",
		Image:       "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=400",
		Rating:      domain.Rating{Rate: 4.3, Count: 198},
	},
	{
		ID:          14,
		Title:       "Blazer Formal de Oficina",
		Price:       119.99,
		Description: "Blazer elegante y profesional, perfecto para reuniones de negocios y eventos formales.",
		Category:    "women's clothing",
		Image:       "https://images.unsplash.com/photo-1591047135029-9c2c9a63c97b?w=400",
		Rating:      domain.Rating{Rate: 4.6, Count: 176},
	},
	{
		ID:          15,
		Title:       "Cámara Canon EOS R6",
		Price:       2499.99,
		Description: "Cámara mirrorless profesional con sensor full-frame y grabación 4K.",
		Category:    "electronics",
		Image:       "https://images.unsplash.com/photo-1606983340126-99ab4feaa64a?w=400",
		Rating:      domain.Rating{Rate: 4.9, Count: 89},
	},
	{
		ID:          16,
		Title:       "Jeans Slim Fit Premium",
		Price:       69.99,
		Description: "Jeans de corte slim con stretch para mayor comodidad y estilo moderno.",
		Category:    "men's clothing",
		Image:       "https://images.unsplash.com/photo-1582418702059-97ebaf932f11?w=400",
		Rating:      domain.Rating{Rate: 4.4, Count: 223},
	},
	{
		ID:          17,
		Title:       "Blusa de Seda Premium",
		Price:       54.99,
		Description: "Blusa elegante de seda natural, suave al tacto y perfecta para ocasiones especiales.",
		Category:    "women's clothing",
		Image:       "https://images.unsplash.com/photo-1594633313593-bab3825d0caf?w=400",
		Rating:      domain.Rating{Rate: 4.7, Count: 189},
	},
	{
		ID:          18,
		Title:       "PlayStation 5",
		Price:       499.99,
		Description: "Consola de última generación con procesador AMD Ryzen Zen 2 y GPU RDNA 2.",
		Category:    "electronics",
		Image:       "https://images.unsplash.com/photo-1606813907291-d86efa9b94db?w=400",
		Rating:      domain.Rating{Rate: 4.9, Count: 678},
	},
	{
		ID:          19,
		Title:       "Chaqueta Cortavientos Deportiva",
		Price:       64.99,
		Description: "Chaqueta resistente al viento y agua, ideal para actividades al aire libre.",
		Category:    "men's clothing",
		Image:       "https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3?w=400",
		Rating:      domain.Rating{Rate: 4.5, Count: 167},
	},
	{
		ID:          20,
		Title:       "Botas Anchas de Cuero",
		Price:       149.99,
		Description: "Botas elegantes de cuero genuino con suela antideslizante y diseño moderno.",
		Category:    "women's clothing",
		Image:       "https://images.unsplash.com/photo-1608256246200-53bd35f3f44e?w=400",
		Rating:      domain.Rating{Rate: 4.6, Count: 211},
	},
}
