package service

import "github.com/dsntech/dsnpass-go/internal/model"

var tips = []model.Tip{
	{
		Icon:    "lock",
		Title:   "Umuhimu wa Nenosiri Kali",
		Content: "Nenosiri ndio mstari wako wa kwanza wa ulinzi. Nenosiri kali linapaswa kuwa na angalau herufi 12, likichanganya herufi kubwa, ndogo, nambari na alama maalum. Epuka kutumia majina yako, tarehe za kuzaliwa, au maneno rahisi kukisiwa kama '123456'.",
	},
	{
		Icon:    "shield-alert",
		Title:   "Hatari ya Kurudia Nenosiri",
		Content: "Ikiwa unatumia nenosiri moja kwa akaunti zote, mdukuzi akipata nenosiri moja, atapata uwezo wa kuingia kwenye akaunti zako zote ikiwemo benki na barua pepe. Kila akaunti inapaswa kuwa na nenosiri la kipekee.",
	},
	{
		Icon:    "user-check",
		Title:   "Uthibitishaji wa Hatua Mbili (2FA)",
		Content: "Washa 2FA (Two-Factor Authentication) popote inapowezekana. Hii inaongeza safu ya ulinzi ambapo utahitaji msimbo unaotumwa kwa simu yako baada ya kuweka nenosiri. Hata kama mtu anajua nenosiri lako, hataweza kuingia bila simu yako.",
	},
	{
		Icon:    "eye",
		Title:   "Jinsi ya Kukaa Salama Mtandaoni",
		Content: "Kuwa mwangalifu na viungo (links) unavyofungua kwenye barua pepe au SMS. Wadukuzi hutumia mbinu ya 'Phishing' kuiba taarifa zako kwa kujifanya ni kampuni halali. Angalia vizuri anwani ya tovuti kabla ya kuingiza taarifa zako.",
	},
	{
		Icon:    "globe",
		Title:   "Usalama wa Kuvinjari (Browsing)",
		Content: "Hakikisha tovuti unayotumia ina 'https://' mwanzoni mwa anwani yake. Hii inaashiria kuwa mawasiliano kati yako na tovuti hiyo yamesimbwa (encrypted) na ni salama.",
	},
	{
		Icon:    "smartphone",
		Title:   "Sasisha Vifaa Vyako",
		Content: "Daima sasisha (update) programu zako na mfumo wa uendeshaji wa simu au kompyuta yako. Masasisho haya mara nyingi huziba mianya ya usalama ambayo wadukuzi wanaweza kutumia.",
	},
}

var about = model.About{
	App:     "Password Generator",
	Company: "Dsn Technology",
	Tagline: "Innovating for the Future",
	Mission: "Sisi ni Dsn Technology. Tunaunda suluhisho za kiteknolojia zenye nguvu na za kisasa. " +
		"Lengo letu ni kutoa huduma bora za kidijitali zinazorahisisha maisha na kuongeza usalama mtandaoni.",
	Contacts: []model.Contact{
		{Kind: "phone", Label: "Simu", Value: "0745 720 609", Link: "tel:0745720609"},
		{Kind: "web", Label: "Tovuti", Value: "dsntechnology.site", Link: "https://dsntechnology.site"},
		{Kind: "service", Label: "Huduma", Value: "App Development & IT"},
	},
}

// Tips returns the security advice cards in display order.
func Tips() []model.Tip {
	out := make([]model.Tip, len(tips))
	copy(out, tips)
	return out
}

// AboutInfo returns the about page content.
func AboutInfo() model.About {
	out := about
	out.Contacts = append([]model.Contact(nil), about.Contacts...)
	return out
}
