package app

// TotalCountries is the world-coverage denominator used for the global
// percentage. It is a fixed reference constant, not user-configurable.
const TotalCountries = 195

// Continent is one entry of the fixed six-continent taxonomy.
type Continent struct {
	Name      string
	Countries []string
}

// Continents is the fixed continent-to-country membership table, in
// display order. The core ships it verbatim; it never changes at runtime.
var Continents = []Continent{
	{
		Name: "Africa",
		Countries: []string{
			"Algeria", "Angola", "Benin", "Botswana", "Burkina Faso", "Burundi", "Cabo Verde", "Cameroon",
			"Central African Republic", "Chad", "Comoros", "Congo", "Djibouti", "Egypt",
			"Equatorial Guinea", "Eritrea", "Eswatini", "Ethiopia", "Gabon", "Gambia", "Ghana", "Guinea",
			"Guinea-Bissau", "Ivory Coast", "Kenya", "Lesotho", "Liberia", "Libya", "Madagascar", "Malawi",
			"Mali", "Mauritania", "Mauritius", "Morocco", "Mozambique", "Namibia", "Niger", "Nigeria",
			"Rwanda", "Sao Tome and Principe", "Senegal", "Seychelles", "Sierra Leone", "Somalia",
			"South Africa", "South Sudan", "Sudan", "Tanzania", "Togo", "Tunisia", "Uganda", "Zambia",
			"Zimbabwe",
		},
	},
	{
		Name: "Asia",
		Countries: []string{
			"Afghanistan", "Armenia", "Azerbaijan", "Bahrain", "Bangladesh", "Bhutan", "Brunei", "Cambodia",
			"China", "Cyprus", "Georgia", "India", "Indonesia", "Iran", "Iraq", "Israel", "Japan", "Jordan",
			"Kazakhstan", "Kuwait", "Kyrgyzstan", "Laos", "Lebanon", "Malaysia", "Maldives", "Mongolia",
			"Myanmar", "Nepal", "North Korea", "Oman", "Pakistan", "Palestine", "Philippines", "Qatar",
			"Saudi Arabia", "Singapore", "South Korea", "Sri Lanka", "Syria", "Taiwan", "Tajikistan",
			"Thailand", "Timor-Leste", "Turkey", "Turkmenistan", "United Arab Emirates", "Uzbekistan",
			"Vietnam", "Yemen",
		},
	},
	{
		Name: "Europe",
		Countries: []string{
			"Albania", "Andorra", "Austria", "Belarus", "Belgium", "Bosnia and Herzegovina", "Bulgaria",
			"Croatia", "Czech Republic", "Denmark", "Estonia", "Finland", "France", "Germany", "Greece",
			"Hungary", "Iceland", "Ireland", "Italy", "Kosovo", "Latvia", "Liechtenstein", "Lithuania",
			"Luxembourg", "Malta", "Moldova", "Monaco", "Montenegro", "Netherlands", "North Macedonia",
			"Norway", "Poland", "Portugal", "Romania", "Russia", "San Marino", "Serbia", "Slovakia",
			"Slovenia", "Spain", "Sweden", "Switzerland", "Ukraine", "United Kingdom", "Vatican City",
		},
	},
	{
		Name: "North America",
		Countries: []string{
			"Antigua and Barbuda", "Bahamas", "Barbados", "Belize", "Canada", "Costa Rica", "Cuba",
			"Dominica", "Dominican Republic", "El Salvador", "Grenada", "Guatemala", "Haiti", "Honduras",
			"Jamaica", "Mexico", "Nicaragua", "Panama", "Saint Kitts and Nevis", "Saint Lucia",
			"Saint Vincent and the Grenadines", "Trinidad and Tobago", "United States",
		},
	},
	{
		Name: "South America",
		Countries: []string{
			"Argentina", "Bolivia", "Brazil", "Chile", "Colombia", "Ecuador", "Guyana", "Paraguay", "Peru",
			"Suriname", "Uruguay", "Venezuela",
		},
	},
	{
		Name: "Oceania",
		Countries: []string{
			"Australia", "Fiji", "Kiribati", "Marshall Islands", "Micronesia", "Nauru", "New Zealand",
			"Palau", "Papua New Guinea", "Samoa", "Solomon Islands", "Tonga", "Tuvalu", "Vanuatu",
		},
	},
}

// ContinentOf returns the continent name for a country, or the empty
// string when the country is outside the taxonomy.
func ContinentOf(country string) string {
	for _, cont := range Continents {
		for _, c := range cont.Countries {
			if c == country {
				return cont.Name
			}
		}
	}
	return ""
}
