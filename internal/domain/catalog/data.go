// internal/domain/catalog/data.go
package catalog

// Authored menu data. Changing the menu is a data change here, not a
// logic change anywhere else.

var restaurantData = Restaurant{
	Name:        "Boteco da Maminha",
	Description: "Seja bem vindo(a) ao Boteco da Maminha. Faça seu pedido abaixo e ganhe desconto no seu pedido!",
	Rating:      4.6,
	WhatsApp:    "+55 11 99999-9999",
	Address:     "Rua das Flores, 123 - Centro",
}

var menuData = []Category{
	{
		ID:          "marmita-promocao",
		Name:        "Marmita com Super Promoção",
		Description: "Pratos completos com preços especiais",
		Products: []Product{
			{
				ID:          "marmita-maminha",
				Name:        "Marmita de Maminha",
				Description: "Saborosa maminha grelhada, acompanhada de arroz, feijão, salada e fritas.",
				Price:       2290,
				Category:    "marmita-promocao",
				IsPopular:   true,
				DetailedDescription: "Nossa marmita de maminha é preparada com cortes selecionados de carne bovina " +
					"grelhados no ponto perfeito. Acompanha arroz soltinho, feijão temperado, salada fresca e batata frita.",
				PreparationTime: "15-20 minutos",
				Allergens:       []string{"Glúten"},
				Customizations: []Customization{
					{
						ID:          "size",
						Name:        "Tamanho",
						Type:        CustomizationTypeSize,
						Required:    true,
						Description: "Escolha o tamanho da sua marmita",
						Options: []Option{
							{ID: "small", Name: "Pequena", Price: 0, IsDefault: true, Description: "Ideal para 1 pessoa"},
							{ID: "medium", Name: "Média", Price: 300, Description: "Ideal para 1-2 pessoas"},
							{ID: "large", Name: "Grande", Price: 600, Description: "Ideal para 2-3 pessoas"},
						},
					},
					{
						ID:          "side-dish",
						Name:        "Acompanhamentos",
						Type:        CustomizationTypeSideDish,
						Required:    true,
						Description: "Escolha seus acompanhamentos preferidos",
						Options: []Option{
							{ID: "rice-only", Name: "Só Arroz", Price: 0, IsDefault: true},
							{ID: "rice-beans", Name: "Arroz + Feijão Tropeiro", Price: 0},
							{ID: "rice-cassava", Name: "Arroz + Mandioca", Price: 200},
							{ID: "rice-beans-cassava", Name: "Arroz + Feijão + Mandioca", Price: 300},
						},
					},
					{
						ID:          "extras",
						Name:        "Extras",
						Type:        CustomizationTypeExtra,
						Required:    false,
						Description: "Adicione extras ao seu pedido",
						Options: []Option{
							{ID: "extra-meat", Name: "Carne Extra", Price: 800},
							{ID: "cheese", Name: "Queijo Ralado", Price: 200},
							{ID: "bacon", Name: "Bacon", Price: 300},
							{ID: "salad", Name: "Salada Extra", Price: 250},
						},
					},
				},
			},
			{
				ID:              "marmita-carne-sol",
				Name:            "Marmita de Carne do Sol",
				Description:     "Deliciosa marmita de carne do sol grelhada, com arroz, feijão tropeiro, mandioca e salada.",
				Price:           2299,
				Category:        "marmita-promocao",
				IsPopular:       true,
				PreparationTime: "15-20 minutos",
			},
			{
				ID:          "marmita-linguica",
				Name:        "Marmita de Linguiça",
				Description: "Marmita especial com linguiça artesanal, arroz soltinho, feijão temperadinho e legumes frescos.",
				Price:       2099,
				Category:    "marmita-promocao",
			},
			{
				ID:          "frango-parmegiana",
				Name:        "Frango Parmegiana & Legumes",
				Description: "Frango Parmegiana suculento com queijo derretido e molho caseiro, servido com legumes e arroz.",
				Price:       2099,
				Category:    "marmita-promocao",
			},
		},
	},
	{
		ID:          "marmita-proteinas",
		Name:        "Marmita com 2 Proteínas",
		Description: "Marmitas com dupla proteína",
		Products: []Product{
			{
				ID:          "marmita-dupla",
				Name:        "Marmita Dupla Proteína",
				Description: "Frango grelhado + carne bovina, acompanhado de arroz, feijão e salada.",
				Price:       2890,
				Category:    "marmita-proteinas",
				Customizations: []Customization{
					{
						ID:          "protein",
						Name:        "Proteína Principal",
						Type:        CustomizationTypeProtein,
						Required:    true,
						Description: "Escolha a proteína em maior porção",
						Options: []Option{
							{ID: "beef", Name: "Carne Bovina", Price: 0, IsDefault: true},
							{ID: "chicken", Name: "Frango Grelhado", Price: 0},
							{ID: "picanha", Name: "Picanha", Price: 500},
						},
					},
				},
			},
			{
				ID:          "marmita-mista",
				Name:        "Marmita Mista",
				Description: "Linguiça + frango, com arroz, feijão tropeiro e legumes.",
				Price:       2690,
				Category:    "marmita-proteinas",
			},
		},
	},
	{
		ID:          "frango-assado",
		Name:        "Frango Assado na Churrasqueira",
		Description: "Frango assado na hora, temperado com especiarias especiais",
		Products: []Product{
			{
				ID:          "frango-assado-simples",
				Name:        "Frango Assado",
				Description: "Frango inteiro assado na churrasqueira com tempero especial da casa.",
				Price:       2200,
				Category:    "frango-assado",
				IsPopular:   true,
			},
			{
				ID:          "galeto-baiao",
				Name:        "1 Galeto + 1 Baião",
				Description: "Galeto assado acompanhado de baião de dois tradicional.",
				Price:       3000,
				Category:    "frango-assado",
				IsPopular:   true,
			},
		},
	},
	{
		ID:          "entradinhas",
		Name:        "Entradinhas",
		Description: "Petiscos para começar bem",
		Products: []Product{
			{
				ID:          "coxinha",
				Name:        "Coxinha da Casa",
				Description: "Coxinha artesanal recheada com frango desfiado e catupiry.",
				Price:       450,
				Category:    "entradinhas",
				IsPopular:   true,
			},
			{
				ID:          "pastel",
				Name:        "Pastel de Carne",
				Description: "Pastel crocante recheado com carne moída temperada.",
				Price:       350,
				Category:    "entradinhas",
				Customizations: []Customization{
					{
						ID:       "removals",
						Name:     "Remover Ingredientes",
						Type:     CustomizationTypeRemoval,
						Required: false,
						Options: []Option{
							{ID: "no-onion", Name: "Sem Cebola", Price: 0},
							{ID: "no-olives", Name: "Sem Azeitona", Price: 0},
						},
					},
				},
			},
		},
	},
	{
		ID:          "guarnicoes",
		Name:        "Guarnições",
		Description: "Acompanhamentos especiais",
		Products: []Product{
			{
				ID:          "arroz-feijao",
				Name:        "Arroz e Feijão",
				Description: "Arroz soltinho e feijão temperado da casa.",
				Price:       800,
				Category:    "guarnicoes",
			},
			{
				ID:          "farofa",
				Name:        "Farofa da Casa",
				Description: "Farofa crocante com bacon e temperos especiais.",
				Price:       600,
				Category:    "guarnicoes",
			},
		},
	},
	{
		ID:          "bebidas",
		Name:        "Bebidas",
		Description: "Refrigerantes, sucos e cervejas",
		Products: []Product{
			{
				ID:          "coca-cola",
				Name:        "Coca-Cola 350ml",
				Description: "Refrigerante gelado.",
				Price:       450,
				Category:    "bebidas",
				IsPopular:   true,
			},
			{
				ID:          "cerveja",
				Name:        "Cerveja Skol 350ml",
				Description: "Cerveja gelada.",
				Price:       550,
				Category:    "bebidas",
			},
		},
	},
}
