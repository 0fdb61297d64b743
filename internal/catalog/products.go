package catalog

import "github.com/kravdojo/gym-api/internal/domain"

func Categories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Uniformes", Slug: "uniformes"},
		{ID: "2", Name: "Equipamentos", Slug: "equipamentos"},
		{ID: "3", Name: "Acessórios", Slug: "acessorios"},
		{ID: "4", Name: "Livros", Slug: "livros"},
		{ID: "5", Name: "Suplementos", Slug: "suplementos"},
	}
}

func Types() []domain.ProductType {
	return []domain.ProductType{
		{ID: "1", Name: "Proteção", Slug: "protecao"},
		{ID: "2", Name: "Treinamento", Slug: "treinamento"},
		{ID: "3", Name: "Vestuário", Slug: "vestuario"},
		{ID: "4", Name: "Educativo", Slug: "educativo"},
		{ID: "5", Name: "Nutrição", Slug: "nutricao"},
	}
}

func Products() []domain.Product {
	categories := Categories()
	types := Types()
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Kimono Krav Maga Oficial",
			Description:   "Kimono oficial da academia, confeccionado em tecido de alta qualidade com bordados exclusivos.",
			Price:         89.9,
			Category:      categories[0],
			Type:          types[2],
			Images:        []string{"assets/images/products/kimono-oficial.png"},
			InStock:       true,
			StockQuantity: 25,
			Sizes:         []string{"P", "M", "G", "GG"},
			Colors:        []string{"Branco", "Preto"},
			Specifications: []domain.Specification{
				{Name: "Material", Value: "100% Algodão"},
				{Name: "Gramatura", Value: "350g/m²"},
				{Name: "Lavagem", Value: "Máquina até 40°C"},
			},
		},
		{
			ID:          "2",
			Name:        "Luvas de Boxe 12oz",
			Description: "Luvas profissionais para treinamento de boxe e Krav Maga, com proteção superior.",
			Price:       129.9,
			Category:    categories[1],
			Type:        types[0],
			Images: []string{
				"https://images.pexels.com/photos/4761663/pexels-photo-4761663.jpeg",
				"https://images.pexels.com/photos/4761664/pexels-photo-4761664.jpeg",
			},
			InStock:       true,
			StockQuantity: 15,
			Colors:        []string{"Vermelho", "Preto", "Azul"},
			Specifications: []domain.Specification{
				{Name: "Peso", Value: "12oz"},
				{Name: "Material", Value: "Couro sintético"},
				{Name: "Fechamento", Value: "Velcro"},
			},
		},
		{
			ID:            "3",
			Name:          "Protetor Bucal",
			Description:   "Protetor bucal moldável para máxima proteção durante os treinos.",
			Price:         24.9,
			Category:      categories[1],
			Type:          types[0],
			Images:        []string{"assets/images/products/bucal.png", "assets/images/products/bucal2.png", "assets/images/products/bucal3.png"},
			InStock:       true,
			StockQuantity: 50,
			Colors:        []string{"Transparente", "Azul", "Vermelho"},
			Specifications: []domain.Specification{
				{Name: "Material", Value: "EVA termoplástico"},
				{Name: "Tamanho", Value: "Único moldável"},
			},
		},
		{
			ID:            "4",
			Name:          "Camiseta Academia",
			Description:   "Camiseta oficial da academia em tecido dry-fit para treinos.",
			Price:         39.9,
			Category:      categories[0],
			Type:          types[2],
			Images:        []string{"assets/images/products/hashguard.png", "assets/images/products/hashguard2.png"},
			InStock:       true,
			StockQuantity: 30,
			Sizes:         []string{"P", "M", "G", "GG"},
			Colors:        []string{"Preto", "Cinza", "Vermelho"},
			Specifications: []domain.Specification{
				{Name: "Material", Value: "100% Poliéster"},
				{Name: "Tecnologia", Value: "Dry-fit"},
			},
		},
		{
			ID:            "5",
			Name:          "Manual Krav Maga",
			Description:   "Guia completo com técnicas fundamentais e avançadas do Krav Maga.",
			Price:         59.9,
			Category:      categories[3],
			Type:          types[3],
			Images:        []string{"assets/images/products/manual.png"},
			InStock:       true,
			StockQuantity: 20,
			Specifications: []domain.Specification{
				{Name: "Páginas", Value: "280"},
				{Name: "Idioma", Value: "Português"},
				{Name: "Autor", Value: "Mestre João Silva"},
			},
		},
		{
			ID:            "6",
			Name:          "Whey Protein 1kg",
			Description:   "Suplemento proteico para auxiliar no desenvolvimento muscular.",
			Price:         89.9,
			Category:      categories[4],
			Type:          types[4],
			Images:        []string{"assets/images/products/whey.png", "assets/images/products/whey2.png"},
			InStock:       false,
			StockQuantity: 0,
			Colors:        []string{"Chocolate", "Baunilha", "Morango"},
			Specifications: []domain.Specification{
				{Name: "Peso", Value: "1kg"},
				{Name: "Proteína por dose", Value: "25g"},
				{Name: "Doses por embalagem", Value: "40"},
			},
		},
		{
			ID:            "7",
			Name:          "Bandagem Elástica",
			Description:   "Bandagem para proteção das mãos durante treinos de boxe.",
			Price:         19.9,
			Category:      categories[2],
			Type:          types[0],
			Images:        []string{"assets/images/products/bandagem.png", "assets/images/products/bandagem2.png", "assets/images/products/bandagem3.png"},
			InStock:       true,
			StockQuantity: 40,
			Colors:        []string{"Preto", "Vermelho", "Azul"},
			Specifications: []domain.Specification{
				{Name: "Comprimento", Value: "3 metros"},
				{Name: "Material", Value: "Algodão elástico"},
			},
		},
		{
			ID:            "8",
			Name:          "Saco de Pancada 1,20m",
			Description:   "Saco de pancada profissional para treinamento em casa.",
			Price:         299.9,
			Category:      categories[1],
			Type:          types[1],
			Images:        []string{"assets/images/products/sacopancada.png", "assets/images/products/sacopancada2.png"},
			InStock:       true,
			StockQuantity: 5,
			Colors:        []string{"Preto", "Vermelho"},
			Specifications: []domain.Specification{
				{Name: "Altura", Value: "1,20m"},
				{Name: "Diâmetro", Value: "35cm"},
				{Name: "Peso", Value: "40kg"},
				{Name: "Material", Value: "Couro sintético"},
			},
		},
	}
}

// ProductByID returns the catalog product with the given id.
func ProductByID(id string) (domain.Product, bool) {
	for _, p := range Products() {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
