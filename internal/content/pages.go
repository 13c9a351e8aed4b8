// Package content holds the site copy that never existed in the legacy HTML and is
// seeded into the CMS as is.
package content

import "turtlewax/migrator/internal/domain"

const (
	AboutPageID    = "aboutPage"
	ContactPageID  = "contactPage"
	HomeSectionsID = "homeHeroSection"
	SiteSettingsID = "siteSettings"
)

// AboutPageSeed is created only when the page does not exist yet.
func AboutPageSeed() domain.RawDocument {
	return domain.RawDocument{
		"_id":          AboutPageID,
		"_type":        "aboutPage",
		"titleAz":      "Haqqımızda",
		"paragraphsAz": []string{},
		"paragraphsRu": []string{},
	}
}

// AboutPageCopy is set over the existing page. Paragraph arrays get their keys from the API.
func AboutPageCopy() map[string]any {
	return map[string]any{
		"titleAz": "Haqqımızda",
		"titleRu": "О нас",
		"paragraphsAz": []string{
			"Turtle Wax brendinin Azərbaycandaki rəsmi web səhifəsinə xoş gəlmisiniz!",
			"Turtle Wax avtomobil kosmetikasını icad edən və onun istehsalına başlayan ilk şirkətlərdən biridir. 1944-cü ildə Turtle Wax ilk qablaşdırılmış maye avtomobil cilasını icad edir.",
			"75 il sonra avtomobilə qulluq sahəsində \"Ən İnnovativ Brend\"™ adına layiq görülərək və satışlarda liderliyi qoruyaraq (wax spray, yuyucu vasitələr, interyerə qulluq və s) avtomobil peşəkarlarını və həvəskarlarını uğurla cəlb etməyə davam edir.",
		},
		"paragraphsRu": []string{
			"Добро пожаловать на официальную веб-страницу бренда Turtle Wax в Азербайджане!",
			"Turtle Wax — одна из первых компаний, изобретших автомобильную косметику и начавших её производство. В 1944 году Turtle Wax изобрела первый упакованный жидкий автомобильный полироль.",
			"75 лет спустя, удостоившись звания \"Самый инновационный бренд\"™ в области ухода за автомобилями и сохраняя лидерство в продажах (wax spray, моющие средства, уход за интерьером и т.д.), продолжает успешно привлекать как профессионалов, так и любителей автомобилей.",
		},
		"videoTitleAz": "Hybrid Solutions",
		"videoTitleRu": "Hybrid Solutions",
		"videoUrl":     "https://www.youtube.com/embed/pm818IM4vt8?rel=0",
	}
}

const (
	contactTitleAz    = "Əlaqə"
	contactSubtitleAz = "Bizimlə əlaqə saxlayın. Hər hansı sualınız varsa, biz kömək etməkdən məmnun olarıq."
	contactPhone      = "+994558944511"
)

func ContactPageSeed() domain.RawDocument {
	return domain.RawDocument{
		"_id":        ContactPageID,
		"_type":      "contactPage",
		"titleAz":    contactTitleAz,
		"subtitleAz": contactSubtitleAz,
		"phone":      contactPhone,
	}
}

// ContactPageCopy carries its own _key values, so it is committed without key generation.
func ContactPageCopy() map[string]any {
	return map[string]any{
		"titleAz":             contactTitleAz,
		"titleRu":             "Контакты",
		"subtitleAz":          contactSubtitleAz,
		"subtitleRu":          "Свяжитесь с нами. Мы будем рады помочь вам с любыми вопросами.",
		"phone":               contactPhone,
		"phoneLabelAz":        "Telefon",
		"phoneLabelRu":        "Телефон",
		"email":               "office@turtlewax.az",
		"emailLabelAz":        "E-poçt",
		"emailLabelRu":        "Эл. почта",
		"infoTitleAz":         "İş saatları",
		"infoTitleRu":         "Рабочие часы",
		"infoTextAz":          "Bazar ertəsi - Cümə: 09:00 - 18:00",
		"infoTextAzSecondary": "Şənbə - Bazar: İstirahət",
		"infoTextRu":          "Понедельник - Пятница: 09:00 - 18:00",
		"infoTextRuSecondary": "Суббота - Воскресенье: Выходной",
		"socialsTitleAz":      "Sosial şəbəkə",
		"socialsTitleRu":      "Социальные сети",
		"socialsSubtitleAz":   "Bizi sosial şəbəkələrdə izləyin və son yeniliklərdən xəbərdar olun.",
		"socialsSubtitleRu":   "Следите за нами в социальных сетях и будьте в курсе последних новостей.",
		"socialLinks": []map[string]any{
			{"_key": "telegram", "platform": "telegram", "label": "Telegram", "url": "https://t.me/turtlewax_az"},
			{"_key": "instagram", "platform": "instagram", "label": "Instagram", "url": "https://www.instagram.com/turtlewax.az/"},
			{"_key": "whatsapp", "platform": "whatsapp", "label": "WhatsApp", "url": "https://api.whatsapp.com/send?phone=994558944511"},
		},
		"retailLocationsCard": map[string]any{
			"titleAz":    "Haradan ala bilərsiniz",
			"titleRu":    "Где купить",
			"subtitleAz": "Rəsmi Turtle Wax tərəfdaşlarından məhsullarımızı əldə edin.",
			"subtitleRu": "Покупайте продукты Turtle Wax у официальных партнёров.",
			"locations": []map[string]any{
				{
					"_key":         "port-baku",
					"locationName": "Port Baku Mall",
					"addressAz":    "Neftçilər pr. 153, Bakı",
					"addressRu":    "пр. Нефтчиляр 153, Баку",
					"phone":        "+994124040404",
					"mapUrl":       "https://maps.google.com/?q=Port+Baku+Mall",
				},
				{
					"_key":         "ganja-store",
					"locationName": "Gəncə Showroom",
					"addressAz":    "Atatürk pr. 21, Gəncə",
					"addressRu":    "пр. Ататюрка 21, Гянджа",
					"phone":        "+994222020202",
					"mapUrl":       "https://maps.google.com/?q=Ataturk+prospekti+21+Ganja",
				},
			},
		},
	}
}

// HomeSectionsSkeleton makes sure the section objects exist before their fields are set.
func HomeSectionsSkeleton() map[string]any {
	return map[string]any{
		"featuredSection":   map[string]any{},
		"categoriesSection": map[string]any{},
		"collectionSection": map[string]any{},
	}
}

func HomeSectionsCopy() map[string]any {
	return map[string]any{
		"featuredSection": map[string]any{
			"taglineAz":  "Seçilmiş məhsullar",
			"taglineRu":  "Избранные товары",
			"titleAz":    "Daha populyar seçimlər",
			"titleRu":    "Популярные решения",
			"subtitleAz": "Müştərilərimizin sevdiyi Turtle Wax məhsullarını kəşf edin və nəticəni dərhal görün.",
			"subtitleRu": "Познакомьтесь с продуктами Turtle Wax, которые чаще всего выбирают наши клиенты.",
		},
		"categoriesSection": map[string]any{
			"taglineAz":  "Kateqoriya seç",
			"taglineRu":  "Выбор категории",
			"titleAz":    "Kateqoriya üzrə alış-veriş",
			"titleRu":    "Покупайте по категориям",
			"subtitleAz": "Turtle Wax məhsullarının geniş çeşidini asanlıqla araşdırmaq üçün kateqoriyalara nəzər salın.",
			"subtitleRu": "Изучайте ассортимент Turtle Wax по категориям и находите нужные средства быстрее.",
			"viewAllAz":  "Bütün kateqoriyalar",
			"viewAllRu":  "Все категории",
		},
		"collectionSection": map[string]any{
			"taglineAz":  "Yeni kolleksiya",
			"taglineRu":  "Новая подборка",
			"titleAz":    "Turtle Wax kolleksiyasını kəşf edin",
			"titleRu":    "Изучите коллекцию Turtle Wax",
			"subtitleAz": "Kateqoriyalara görə seçilmiş məhsullarımızla avtomobiliniz üçün ideal baxım həllini tapın.",
			"subtitleRu": "Подберите оптимальные средства ухода, подобранные по категориям специально для вас.",
			"viewAllAz":  "Bütün məhsullar",
			"viewAllRu":  "Все продукты",
		},
	}
}

// SiteSettings points the catalog download at an uploaded file asset.
func SiteSettings(catalogAssetID string) domain.RawDocument {
	return domain.RawDocument{
		"_id":            SiteSettingsID,
		"_type":          domain.DocumentTypeSiteSettings,
		"catalogTitleAz": "Kataloq",
		"catalogTitleRu": "Каталог",
		"catalogCtaAz":   "Yüklə",
		"catalogCtaRu":   "Скачать",
		"catalogFile": domain.File{
			Type:  "file",
			Asset: domain.NewReference(catalogAssetID),
		},
	}
}
