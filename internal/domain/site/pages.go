package site

import "encoding/json"

/*
	Default public pages
	--------------------
	- seeded once on an empty database
	- afterwards the stored rows are the source of truth
*/

const (
	PageAbout         = "about"
	PageContact       = "contact"
	PageArtClasses    = "art-classes"
	PageStore         = "store"
	PageMeetTheArtist = "meet-the-artist"
)

// PublicPages lists the slugs served as static pages, in menu order.
var PublicPages = []string{PageAbout, PageMeetTheArtist, PageArtClasses, PageStore, PageContact}

func IsPublicPage(slug string) bool {
	for _, s := range PublicPages {
		if s == slug {
			return true
		}
	}
	return false
}

func block(sortIndex int, typ string, props any) SitePageBlock {
	raw, err := json.Marshal(props)
	if err != nil {
		panic(err)
	}
	return SitePageBlock{SortIndex: sortIndex, Type: typ, Props: raw}
}

func DefaultPages() []SitePage {
	return []SitePage{
		{
			Slug:   PageAbout,
			Title:  "About",
			Status: StatusPublished,
			Blocks: []SitePageBlock{
				block(0, "statement", map[string]any{
					"paragraphs": []string{
						"I create from stillness, where beauty is not just seen, but felt. My paintings are invitations to pause, to soften, and to listen within.",
						"Through feminine figures, light-infused landscapes, and the quiet between forms, I explore the spaces where the seen meets the unseen, where soul rises gently to the surface.",
						"My work is not about portraying life as it appears, but as it feels when we are deeply present.",
						"May my art be a doorway back to the essence we never truly left.",
					},
				}),
				block(1, "list", map[string]any{
					"heading": "Solo Exhibitions",
					"items": []string{
						"2020 - 'Coastal' online exhibition with 'The Exhibit'",
						"2016 - 'Immersion' Hardys Bay Club, Hardys Bay.",
						"2014 - 'Voyage', Art Studios Gallery. North Gosford",
						"2012 - 'Mare e Cielo' Hang- Nicole Ruiz Gallery, Brooklyn",
						"2010 - 'How can I be substantial if I fail to cast a shadow?' Gosford Regional Gallery",
						"2007 - 'After Siddhartha' Gnostic Mana Café, Woy Woy",
						"2004 - 'Sea Visions' Gosford Regional Gallery",
						"2003 - Solo Exhibition, Shorethyme Restaurant, Norah Head",
					},
				}),
				block(2, "list", map[string]any{
					"heading": "Group Exhibitions and Awards",
					"items": []string{
						"2022 - International Women's Day : Gladstone",
						"2018 - Finalist Gosford City Art Prize",
						"2014 - TransformARTive, Art Studios Gallery, North Gosford",
						"2013 - 'The story of the Creatives' New York",
					},
				}),
			},
		},
		{
			Slug:   PageMeetTheArtist,
			Title:  "Meet the Artist",
			Status: StatusPublished,
			Blocks: []SitePageBlock{
				block(0, "text", map[string]any{"body": "Learn more about Sandra Maree and her artistic journey."}),
			},
		},
		{
			Slug:   PageArtClasses,
			Title:  "Art Classes",
			Status: StatusPublished,
			Blocks: []SitePageBlock{
				block(0, "text", map[string]any{"body": "All in person classes are held at my home studio in Crescent Head."}),
				block(1, "class", map[string]any{
					"heading": "Adult Art Classes",
					"prices": []string{
						"$60 for a one hour drawing lesson",
						"$100 for an hour and half lesson.",
						"$180 for two x one hour and half lessons",
					},
					"notes": "Material fee is extra, prices vary according to medium used. Instruction is given in a variety of mediums, drawing, conte, pastels, watercolour pencils, and watercolours, tailored to suit your creative interests and provide skill development.",
					"cta":   "Enroll Now",
				}),
				block(2, "class", map[string]any{
					"heading": "Kids and Teen Art Lessons",
					"prices": []string{
						"1 private one hour lesson $50",
						"1 private one hour lesson free with $50 Kids Voucher",
					},
					"notes": "Instruction is given in a variety of mediums, drawing, conte, pastels, watercolour pencils, and watercolours and tailored to suit your child's interest and skills. I supply all materials drawing, watercolour, watercolour paper.",
					"cta":   "Enroll Now",
				}),
				block(3, "class", map[string]any{
					"heading": "Creative kids vouchers",
					"notes":   "I am registered provider for Service NSW, Creative Kids Vouchers. These can be used for face to face and also my online art lessons.",
					"cta":     "Apply here",
				}),
			},
		},
		{
			Slug:   PageStore,
			Title:  "Store",
			Status: StatusPublished,
			Blocks: []SitePageBlock{
				block(0, "text", map[string]any{"body": "Browse and purchase Sandra Maree's artwork and products."}),
			},
		},
		{
			Slug:   PageContact,
			Title:  "Contact",
			Status: StatusPublished,
			Blocks: []SitePageBlock{
				block(0, "text", map[string]any{"body": "Get in touch with Sandra Maree."}),
			},
		},
	}
}
