package analysis

// Tables holds the static lookup data the inference rules consult. It is
// built once at process start and passed by reference into each Profile,
// so tests can substitute reduced tables without touching package state.
type Tables struct {
	// CountryLinks maps wiki-link text to an ISO 3166-1 code, per language.
	CountryLinks map[string]map[string]string

	// Demonyms maps nationality adjectives found in category names to an
	// ISO code, per language.
	Demonyms map[string]map[string]string

	// USStates lists US state names; a link or category referencing one
	// implies country US.
	USStates []string

	// Firstnames maps given names to a gender, per language.
	Firstnames map[string]map[string]string
}

// DefaultTables returns the built-in lookup data.
func DefaultTables() *Tables {
	return &Tables{
		CountryLinks: map[string]map[string]string{
			"en": countryLinksEN,
			"fr": countryLinksFR,
		},
		Demonyms: map[string]map[string]string{
			"en": demonymsEN,
			"fr": demonymsFR,
		},
		USStates:   usStates,
		Firstnames: map[string]map[string]string{
			"en": firstnamesEN,
			"fr": firstnamesFR,
		},
	}
}

var countryLinksEN = map[string]string{
	"Afghanistan": "AF", "Albania": "AL", "Algeria": "DZ", "Argentina": "AR",
	"Armenia": "AM", "Australia": "AU", "Austria": "AT", "Azerbaijan": "AZ",
	"Bahamas": "BS", "Bangladesh": "BD", "Barbados": "BB", "Belarus": "BY",
	"Belgium": "BE", "Bolivia": "BO", "Bosnia and Herzegovina": "BA",
	"Brazil": "BR", "Bulgaria": "BG", "Cambodia": "KH", "Cameroon": "CM",
	"Canada": "CA", "Chile": "CL", "China": "CN", "Colombia": "CO",
	"Costa Rica": "CR", "Croatia": "HR", "Cuba": "CU", "Cyprus": "CY",
	"Czech Republic": "CZ", "Denmark": "DK", "Dominican Republic": "DO",
	"Ecuador": "EC", "Egypt": "EG", "England": "GB", "Estonia": "EE",
	"Ethiopia": "ET", "Finland": "FI", "France": "FR", "Georgia (country)": "GE",
	"Germany": "DE", "Ghana": "GH", "Greece": "GR", "Guatemala": "GT",
	"Haiti": "HT", "Honduras": "HN", "Hong Kong": "HK", "Hungary": "HU",
	"Iceland": "IS", "India": "IN", "Indonesia": "ID", "Iran": "IR",
	"Iraq": "IQ", "Ireland": "IE", "Israel": "IL", "Italy": "IT",
	"Ivory Coast": "CI", "Jamaica": "JM", "Japan": "JP", "Jordan": "JO",
	"Kazakhstan": "KZ", "Kenya": "KE", "Kuwait": "KW", "Latvia": "LV",
	"Lebanon": "LB", "Lithuania": "LT", "Luxembourg": "LU", "Madagascar": "MG",
	"Malaysia": "MY", "Mali": "ML", "Malta": "MT", "Mexico": "MX",
	"Monaco": "MC", "Mongolia": "MN", "Morocco": "MA", "Mozambique": "MZ",
	"Nepal": "NP", "Netherlands": "NL", "New Zealand": "NZ", "Nicaragua": "NI",
	"Nigeria": "NG", "North Korea": "KP", "Northern Ireland": "GB",
	"Norway": "NO", "Pakistan": "PK", "Panama": "PA", "Paraguay": "PY",
	"Peru": "PE", "Philippines": "PH", "Poland": "PL", "Portugal": "PT",
	"Puerto Rico": "PR", "Romania": "RO", "Russia": "RU", "Saudi Arabia": "SA",
	"Scotland": "GB", "Senegal": "SN", "Serbia": "RS", "Singapore": "SG",
	"Slovakia": "SK", "Slovenia": "SI", "South Africa": "ZA",
	"South Korea": "KR", "Spain": "ES", "Sri Lanka": "LK", "Sweden": "SE",
	"Switzerland": "CH", "Taiwan": "TW", "Tanzania": "TZ", "Thailand": "TH",
	"Trinidad and Tobago": "TT", "Tunisia": "TN", "Turkey": "TR",
	"Uganda": "UG", "Ukraine": "UA", "United Arab Emirates": "AE",
	"United Kingdom": "GB", "United States": "US", "Uruguay": "UY",
	"Uzbekistan": "UZ", "Venezuela": "VE", "Vietnam": "VN", "Wales": "GB",
	"Zambia": "ZM", "Zimbabwe": "ZW",
}

var countryLinksFR = map[string]string{
	"Afrique du Sud": "ZA", "Algérie": "DZ", "Allemagne": "DE",
	"Angleterre": "GB", "Argentine": "AR", "Australie": "AU",
	"Autriche": "AT", "Belgique": "BE", "Brésil": "BR", "Bulgarie": "BG",
	"Cameroun": "CM", "Canada": "CA", "Chili": "CL", "Chine": "CN",
	"Colombie": "CO", "Croatie": "HR", "Cuba": "CU", "Danemark": "DK",
	"Écosse": "GB", "Égypte": "EG", "Espagne": "ES", "Estonie": "EE",
	"États-Unis": "US", "Finlande": "FI", "France": "FR", "Grèce": "GR",
	"Haïti": "HT", "Hongrie": "HU", "Inde": "IN", "Irlande": "IE",
	"Islande": "IS", "Israël": "IL", "Italie": "IT", "Jamaïque": "JM",
	"Japon": "JP", "Liban": "LB", "Luxembourg": "LU", "Madagascar": "MG",
	"Mali": "ML", "Maroc": "MA", "Mexique": "MX", "Monaco": "MC",
	"Norvège": "NO", "Nouvelle-Zélande": "NZ", "Pays-Bas": "NL",
	"Pologne": "PL", "Portugal": "PT", "Québec": "CA", "Roumanie": "RO",
	"Royaume-Uni": "GB", "Russie": "RU", "Sénégal": "SN", "Serbie": "RS",
	"Suède": "SE", "Suisse": "CH", "Tunisie": "TN", "Turquie": "TR",
	"Ukraine": "UA", "Viêt Nam": "VN",
}

var demonymsEN = map[string]string{
	"American": "US", "Argentine": "AR", "Australian": "AU", "Austrian": "AT",
	"Belgian": "BE", "Brazilian": "BR", "British": "GB", "Bulgarian": "BG",
	"Canadian": "CA", "Chilean": "CL", "Chinese": "CN", "Colombian": "CO",
	"Croatian": "HR", "Cuban": "CU", "Czech": "CZ", "Danish": "DK",
	"Dutch": "NL", "English": "GB", "Estonian": "EE", "Finnish": "FI",
	"French": "FR", "German": "DE", "Greek": "GR", "Hungarian": "HU",
	"Icelandic": "IS", "Indian": "IN", "Indonesian": "ID", "Irish": "IE",
	"Israeli": "IL", "Italian": "IT", "Jamaican": "JM", "Japanese": "JP",
	"Mexican": "MX", "New Zealand": "NZ", "Norwegian": "NO",
	"Polish": "PL", "Portuguese": "PT", "Puerto Rican": "PR",
	"Romanian": "RO", "Russian": "RU", "Scottish": "GB", "Serbian": "RS",
	"South African": "ZA", "South Korean": "KR", "Spanish": "ES",
	"Swedish": "SE", "Swiss": "CH", "Turkish": "TR", "Ukrainian": "UA",
	"Welsh": "GB",
}

var demonymsFR = map[string]string{
	"algérien": "DZ", "allemand": "DE", "américain": "US", "anglais": "GB",
	"argentin": "AR", "australien": "AU", "autrichien": "AT", "belge": "BE",
	"brésilien": "BR", "britannique": "GB", "canadien": "CA", "chilien": "CL",
	"chinois": "CN", "croate": "HR", "cubain": "CU", "danois": "DK",
	"écossais": "GB", "espagnol": "ES", "finlandais": "FI", "français": "FR",
	"française": "FR", "grec": "GR", "hongrois": "HU", "irlandais": "IE",
	"islandais": "IS", "israélien": "IL", "italien": "IT", "jamaïcain": "JM",
	"japonais": "JP", "marocain": "MA", "mexicain": "MX", "monégasque": "MC",
	"néerlandais": "NL", "norvégien": "NO", "nouveau-zélandais": "NZ",
	"polonais": "PL", "portugais": "PT", "québécois": "CA", "roumain": "RO",
	"russe": "RU", "sénégalais": "SN", "serbe": "RS", "sud-africain": "ZA",
	"suédois": "SE", "suisse": "CH", "tunisien": "TN", "turc": "TR",
	"ukrainien": "UA",
}

var usStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
	"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
	"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
	"New Hampshire", "New Jersey", "New Mexico", "New York",
	"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon",
	"Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
	"West Virginia", "Wisconsin", "Wyoming",
}

var firstnamesEN = map[string]string{
	"Aaron": "male", "Adam": "male", "Alan": "male", "Albert": "male",
	"Alice": "female", "Amanda": "female", "Amy": "female", "Andrew": "male",
	"Angela": "female", "Anna": "female", "Anthony": "male",
	"Barbara": "female", "Benjamin": "male", "Brian": "male",
	"Carol": "female", "Charles": "male", "Christopher": "male",
	"Daniel": "male", "David": "male", "Deborah": "female", "Dennis": "male",
	"Diana": "female", "Donald": "male", "Donna": "female",
	"Dorothy": "female", "Edward": "male", "Elizabeth": "female",
	"Emily": "female", "Emma": "female", "Eric": "male", "Frank": "male",
	"George": "male", "Harold": "male", "Helen": "female", "Henry": "male",
	"Jack": "male", "James": "male", "Jane": "female", "Janet": "female",
	"Jason": "male", "Jennifer": "female", "Jessica": "female",
	"John": "male", "Joseph": "male", "Joshua": "male", "Karen": "female",
	"Kenneth": "male", "Kevin": "male", "Laura": "female", "Linda": "female",
	"Lisa": "female", "Margaret": "female", "Maria": "female",
	"Mark": "male", "Mary": "female", "Matthew": "male", "Michael": "male",
	"Michelle": "female", "Nancy": "female", "Patricia": "female",
	"Patrick": "male", "Paul": "male", "Peter": "male", "Rebecca": "female",
	"Richard": "male", "Robert": "male", "Ronald": "male", "Ruth": "female",
	"Samuel": "male", "Sandra": "female", "Sarah": "female", "Scott": "male",
	"Sharon": "female", "Stephen": "male", "Steven": "male",
	"Susan": "female", "Thomas": "male", "Timothy": "male",
	"Walter": "male", "William": "male",
}

var firstnamesFR = map[string]string{
	"Alain": "male", "André": "male", "Anne": "female", "Antoine": "male",
	"Bernard": "male", "Brigitte": "female", "Bruno": "male",
	"Catherine": "female", "Céline": "female", "Chantal": "female",
	"Charles": "male", "Christian": "male", "Christine": "female",
	"Christophe": "male", "Claire": "female", "Claude": "male",
	"Daniel": "male", "Danielle": "female", "Denis": "male",
	"Dominique": "male", "Édith": "female", "Emmanuel": "male",
	"Éric": "male", "Florence": "female", "François": "male",
	"Françoise": "female", "Frédéric": "male", "Georges": "male",
	"Gérard": "male", "Gilbert": "male", "Guy": "male", "Henri": "male",
	"Hélène": "female", "Isabelle": "female", "Jacques": "male",
	"Jean": "male", "Jeanne": "female", "Julien": "male", "Laurent": "male",
	"Louis": "male", "Luc": "male", "Marc": "male", "Marcel": "male",
	"Marie": "female", "Martine": "female", "Michel": "male",
	"Michèle": "female", "Monique": "female", "Nathalie": "female",
	"Nicolas": "male", "Nicole": "female", "Olivier": "male",
	"Pascal": "male", "Patrick": "male", "Paul": "male", "Philippe": "male",
	"Pierre": "male", "René": "male", "Robert": "male", "Serge": "male",
	"Sophie": "female", "Stéphane": "male", "Sylvie": "female",
	"Thierry": "male", "Valérie": "female", "Véronique": "female",
	"Vincent": "male", "Yves": "male",
}
