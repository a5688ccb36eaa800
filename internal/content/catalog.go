// aykutspohr | 2026
// catalog.go

package content

import (
	"github.com/aykutspohrdev/spohr-portfolio-api/internal/portfolio"
	"github.com/aykutspohrdev/spohr-portfolio-api/internal/pricing"
	"github.com/aykutspohrdev/spohr-portfolio-api/internal/testimonial"
)

// The static content store. Entries are authored here at compile time;
// slice order is the canonical authoring order, distinct from the
// DisplayOrder fields used for manual sort overrides. Changing content
// means redeploying.

func projects() []portfolio.Project {
	return []portfolio.Project{
		{
			ID:     "baeckerei-hofmann",
			Title:  "Bäckerei Hofmann – Website mit Vorbestellung",
			Client: "Bäckerei Hofmann",
			Problem: "Die Traditionsbäckerei hatte keinen eigenen " +
				"Online-Auftritt und verlor Laufkundschaft an Ketten, die " +
				"ihre Angebote digital bewerben. Tagesgebäck blieb regelmäßig " +
				"liegen, weil Kunden das Sortiment nicht vorab einsehen konnten.",
			Solution: "Eine schnelle, mobil optimierte Website mit täglich " +
				"gepflegtem Sortiment und einer einfachen Vorbestellfunktion " +
				"für Brote und Torten. Das Team pflegt Inhalte selbst über " +
				"ein schlankes CMS ohne technische Vorkenntnisse.",
			Outcome: "Bereits im ersten Quartal kamen über 120 " +
				"Vorbestellungen pro Monat über die Website. Die Retouren " +
				"beim Tagesgebäck sanken spürbar und die Bäckerei gewann " +
				"zwei Firmenkunden für regelmäßige Großbestellungen.",
			ImageURL: "https://cdn.spohr.dev/projects/baeckerei-hofmann/cover.webp",
			GalleryImages: []string{
				"https://cdn.spohr.dev/projects/baeckerei-hofmann/sortiment.webp",
				"https://cdn.spohr.dev/projects/baeckerei-hofmann/bestellung.webp",
			},
			Technologies:   []string{"Next.js", "TypeScript", "Tailwind CSS", "Sanity CMS"},
			ProjectURL:     "https://www.baeckerei-hofmann.de",
			CompletionDate: "2025-11-10",
			Featured:       true,
			DisplayOrder:   1,
			Category:       portfolio.CategoryCorporateWebsite,
			Status:         portfolio.StatusShowcased,
			Duration:       2,
			TeamSize:       1,
			Metrics: []portfolio.Metric{
				{Name: "Vorbestellungen", Value: "120", Unit: "pro Monat"},
				{Name: "Ladezeit", Value: "0.9", Unit: "s", Change: "-70%"},
			},
		},
		{
			ID:     "studio-move-booking",
			Title:  "Online-Buchungssystem für Studio MOVE",
			Client: "Studio MOVE Fitness & Yoga",
			Problem: "Kursbuchungen liefen über Telefon und eine " +
				"Papierliste am Empfang. Doppelbuchungen und kurzfristige " +
				"Absagen waren an der Tagesordnung, und das Team verbrachte " +
				"mehrere Stunden pro Woche mit reiner Terminverwaltung.",
			Solution: "Eine Webanwendung mit Echtzeit-Kursplan, " +
				"Online-Buchung samt Warteliste und automatischen " +
				"Erinnerungen per E-Mail. Mitglieder verwalten ihre " +
				"Buchungen selbst, Kursleiter sehen ihre Auslastung live.",
			Outcome: "Rund 80 Prozent aller Buchungen laufen inzwischen " +
				"online, No-Shows gingen um ein Drittel zurück. Der Empfang " +
				"spart wöchentlich etwa sechs Stunden Verwaltungsaufwand " +
				"und die Wartelisten füllen ausgefallene Plätze automatisch.",
			ImageURL: "https://cdn.spohr.dev/projects/studio-move/cover.webp",
			GalleryImages: []string{
				"https://cdn.spohr.dev/projects/studio-move/kursplan.webp",
			},
			Technologies:   []string{"Next.js", "TypeScript", "PostgreSQL", "Prisma", "Stripe"},
			ProjectURL:     "https://buchung.studio-move.de",
			CompletionDate: "2026-02-18",
			Featured:       true,
			DisplayOrder:   2,
			Category:       portfolio.CategoryWebApplication,
			Status:         portfolio.StatusCompleted,
			Duration:       4,
			TeamSize:       2,
			Challenges: []string{
				"Migration der bestehenden Mitgliederdaten ohne Ausfallzeit",
				"Wartelisten-Logik bei gleichzeitigen Buchungen",
			},
			Learnings: []string{
				"Frühzeitige Tests mit echten Kursleitern vermeiden späte Umbauten",
			},
			Metrics: []portfolio.Metric{
				{Name: "Online-Buchungsquote", Value: "80", Unit: "%"},
				{Name: "No-Shows", Value: "33", Unit: "%", Change: "-33%"},
			},
		},
		{
			ID:     "weber-consulting-relaunch",
			Client: "Weber & Partner Unternehmensberatung",
			Title:  "Relaunch der Kanzleiwebsite Weber & Partner",
			Problem: "Die bestehende Website stammte aus dem Jahr 2014, " +
				"war nicht mobilfähig und tauchte bei relevanten " +
				"Suchbegriffen nicht auf. Neukundenanfragen kamen fast " +
				"ausschließlich über persönliche Empfehlungen zustande.",
			Solution: "Ein inhaltlich neu strukturierter Auftritt mit " +
				"klaren Leistungsseiten, Referenzen und einem " +
				"Kontaktformular mit Terminvorschlägen. Technisch wurde auf " +
				"das vorhandene CMS der Kanzlei aufgesetzt und überarbeitet.",
			Outcome: "Die Website rankt für die wichtigsten regionalen " +
				"Suchbegriffe auf der ersten Seite. Innerhalb von sechs " +
				"Monaten kamen 14 qualifizierte Anfragen direkt über das " +
				"Kontaktformular, zuvor waren es null.",
			ImageURL:       "https://cdn.spohr.dev/projects/weber-consulting/cover.webp",
			Technologies:   []string{"WordPress", "PHP", "SCSS"},
			CompletionDate: "2024-09-05",
			Featured:       false,
			DisplayOrder:   3,
			Category:       portfolio.CategoryCorporateWebsite,
			Status:         portfolio.StatusCompleted,
			TeamSize:       1,
		},
	}
}

func pricingTiers() []pricing.Tier {
	return []pricing.Tier{
		{
			ID:          "tier-landing",
			Name:        pricing.TierLanding,
			Description: "Eine fokussierte Landingpage, die Ihr Angebot auf den Punkt bringt.",
			Features: []string{
				"Individuelles Design ohne Baukasten",
				"Optimiert für alle Endgeräte",
				"Kontaktformular mit Spam-Schutz",
				"Suchmaschinen-Grundoptimierung",
				"Übergabe mit persönlicher Einweisung",
			},
			StartingPrice: &pricing.Price{
				Amount:   1490,
				Currency: pricing.CurrencyEUR,
				Period:   "einmalig",
				Display:  "ab 1.490 €",
			},
			CTAText:         "Projekt anfragen",
			DisplayOrder:    1,
			Status:          pricing.StatusActive,
			Timeline:        "2–3 Wochen",
			Revisions:       2,
			SupportDuration: "4 Wochen nach Launch",
			Category:        pricing.CategoryWebsite,
			TargetClients:   []string{"Selbstständige", "Gründer"},
		},
		{
			ID:          "tier-standard",
			Name:        pricing.TierStandard,
			Description: "Die komplette Unternehmenswebsite mit mehreren Seiten und CMS.",
			Features: []string{
				"Bis zu acht individuell gestaltete Seiten",
				"Pflegbares CMS für eigene Inhalte",
				"Blog- oder News-Bereich nach Bedarf",
				"Erweiterte Suchmaschinenoptimierung",
				"Performance- und Ladezeit-Optimierung",
				"DSGVO-konforme Einbindung aller Dienste",
				"Einrichtung von Analytics auf Wunsch",
			},
			StartingPrice: &pricing.Price{
				Amount:    3900,
				MaxAmount: 6500,
				Currency:  pricing.CurrencyEUR,
				Period:    "einmalig",
				Display:   "3.900 – 6.500 €",
			},
			CTAText:         "Beratung vereinbaren",
			Highlighted:     true,
			DisplayOrder:    2,
			Status:          pricing.StatusFeatured,
			Benefits:        []string{"Fester Ansprechpartner", "Transparente Festpreise"},
			Timeline:        "4–6 Wochen",
			Revisions:       3,
			SupportDuration: "3 Monate nach Launch",
			Category:        pricing.CategoryWebsite,
			TargetClients:   []string{"Kleine Unternehmen", "Handwerksbetriebe", "Kanzleien"},
		},
		{
			ID:          "tier-custom",
			Name:        pricing.TierCustom,
			Description: "Individuelle Webanwendungen und Shops, kalkuliert nach Aufwand.",
			Features: []string{
				"Anforderungsworkshop zum Projektstart",
				"Maßgeschneiderte Architektur und Technik",
				"Anbindung bestehender Systeme und Schnittstellen",
				"Buchungs-, Shop- oder Portalfunktionen",
				"Begleitung über den Launch hinaus",
				"Wartungsvertrag optional",
			},
			IsCustom:     true,
			CTAText:      "Erstgespräch buchen",
			DisplayOrder: 3,
			Status:       pricing.StatusActive,
			Limitations:  []string{"Projektstart nach Verfügbarkeit"},
			Timeline:     "nach Projektumfang",
			Category:     pricing.CategoryApplication,
			TargetClients: []string{
				"Unternehmen mit individuellen Prozessen",
			},
			AddOns: []pricing.AddOn{
				{
					ID:          "addon-wartung",
					Name:        "Wartung & Pflege",
					Description: "Laufende Updates, Backups und kleine Anpassungen im Monatspaket.",
					Price: &pricing.Price{
						Amount:   120,
						Currency: pricing.CurrencyEUR,
						Period:   "monatlich",
						Display:  "ab 120 € / Monat",
					},
				},
			},
		},
	}
}

func testimonials() []testimonial.Testimonial {
	return []testimonial.Testimonial{
		{
			ID: "hofmann-2025",
			Quote: "Die Zusammenarbeit war unkompliziert und auf Augenhöhe. " +
				"Unsere Kunden bestellen inzwischen ganz selbstverständlich " +
				"online vor – das hätten wir einem Bäcker vor zwei Jahren " +
				"nicht geglaubt.",
			ClientName:    "Martina Hofmann",
			Company:       "Bäckerei Hofmann",
			Role:          "Inhaberin",
			ClientPhoto:   "https://cdn.spohr.dev/testimonials/hofmann.webp",
			Featured:      true,
			DisplayOrder:  1,
			Status:        testimonial.StatusFeatured,
			DateGiven:     "2025-12-02",
			Rating:        5,
			Category:      testimonial.CategoryCorporateWebsite,
			ServiceAreas:  []string{"Design", "CMS", "SEO"},
			Industry:      testimonial.IndustryGastronomy,
			Metrics:       []string{"120 Vorbestellungen pro Monat"},
			Language:      testimonial.LanguageGerman,
			HasPermission: true,
			Source:        testimonial.SourceEmail,
			ProjectID:     "baeckerei-hofmann",
		},
		{
			ID: "studio-move-2026",
			Quote: "Das Buchungssystem läuft seit dem ersten Tag stabil und " +
				"spart uns jede Woche Stunden. Auch unsere älteren Mitglieder " +
				"kommen mit der Buchung problemlos zurecht.",
			ClientName:    "Daniel Krause",
			Company:       "Studio MOVE Fitness & Yoga",
			Role:          "Studioleitung",
			CompanyLogo:   "https://cdn.spohr.dev/testimonials/studio-move-logo.svg",
			DisplayOrder:  2,
			Status:        testimonial.StatusApproved,
			DateGiven:     "2026-03-10",
			Rating:        5,
			Category:      testimonial.CategoryWebApplication,
			Industry:      testimonial.IndustryHealthFitness,
			Language:      testimonial.LanguageGerman,
			HasPermission: true,
			Source:        testimonial.SourceVideoCall,
			ProjectID:     "studio-move-booking",
		},
		{
			ID: "weber-2024",
			Quote: "Professional from the first call to the handover. The new " +
				"site finally reflects the quality of our consulting work and " +
				"generates inquiries on its own.",
			ClientName:    "Thomas Weber",
			Company:       "Weber & Partner Unternehmensberatung",
			Role:          "Managing Partner",
			CompanyLogo:   "https://cdn.spohr.dev/testimonials/weber-logo.svg",
			DisplayOrder:  3,
			Status:        testimonial.StatusPending,
			DateGiven:     "2024-10-01",
			Rating:        4,
			Category:      testimonial.CategoryCorporateWebsite,
			Industry:      testimonial.IndustryConsulting,
			Language:      testimonial.LanguageEnglish,
			HasPermission: false,
			Source:        testimonial.SourceDirect,
			ProjectID:     "weber-consulting-relaunch",
		},
	}
}
