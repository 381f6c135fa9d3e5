package teamname

// DefaultAliases lists the known name variants across the supported leagues.
// Sources and targets are normalized when the table is built; a target must
// never appear as a source.
func DefaultAliases() []AliasPair {
	return []AliasPair{
		// Premier League
		{From: "Man City", To: "Manchester City"},
		{From: "Man United", To: "Manchester United"},
		{From: "Man Utd", To: "Manchester United"},
		{From: "Manchester Utd", To: "Manchester United"},
		{From: "Newcastle", To: "Newcastle United"},
		{From: "West Ham", To: "West Ham United"},
		{From: "Wolves", To: "Wolverhampton Wanderers"},
		{From: "Brighton & Hove Albion", To: "Brighton"},
		{From: "Tottenham", To: "Tottenham Hotspur"},
		{From: "Spurs", To: "Tottenham Hotspur"},
		{From: "Nottm Forest", To: "Nottingham Forest"},
		{From: "Nott'm Forest", To: "Nottingham Forest"},
		{From: "Sunderland AFC", To: "Sunderland"},
		{From: "Leeds", To: "Leeds United"},

		// La Liga
		{From: "Real Sociedad de Fútbol", To: "Real Sociedad"},
		{From: "Atletico Madrid", To: "Club Atlético de Madrid"},
		{From: "Atleti", To: "Club Atlético de Madrid"},
		{From: "Real Madrid CF", To: "Real Madrid"},
		{From: "Barcelona", To: "FC Barcelona"},
		{From: "Barca", To: "FC Barcelona"},
		{From: "Villarreal CF", To: "Villarreal"},
		{From: "Elche CF", To: "Elche"},
		{From: "Getafe CF", To: "Getafe"},
		{From: "Valencia CF", To: "Valencia"},
		{From: "Real Betis Balompié", To: "Real Betis"},
		{From: "Betis", To: "Real Betis"},
		{From: "RCD Espanyol de Barcelona", To: "Espanyol"},
		{From: "Deportivo Alavés", To: "Alaves"},
		{From: "CA Osasuna", To: "Osasuna"},
		{From: "Levante UD", To: "Levante"},
		{From: "Rayo Vallecano de Madrid", To: "Rayo Vallecano"},
		{From: "RC Celta de Vigo", To: "Celta Vigo"},
		{From: "Celta", To: "Celta Vigo"},
		{From: "RCD Mallorca", To: "Mallorca"},
		{From: "Athletic Club", To: "Athletic Bilbao"},

		// Bundesliga
		{From: "Bayern Munich", To: "FC Bayern München"},
		{From: "Bayern München", To: "FC Bayern München"},
		{From: "Bayern", To: "FC Bayern München"},
		{From: "Dortmund", To: "Borussia Dortmund"},
		{From: "BVB", To: "Borussia Dortmund"},
		{From: "Leverkusen", To: "Bayer 04 Leverkusen"},
		{From: "Bayer Leverkusen", To: "Bayer 04 Leverkusen"},
		{From: "Stuttgart", To: "VfB Stuttgart"},
		{From: "Frankfurt", To: "Eintracht Frankfurt"},
		{From: "Freiburg", To: "SC Freiburg"},
		{From: "Hamburg", To: "Hamburger SV"},
		{From: "Hoffenheim", To: "TSG 1899 Hoffenheim"},
		{From: "TSG Hoffenheim", To: "TSG 1899 Hoffenheim"},
		{From: "Werder Bremen", To: "SV Werder Bremen"},
		{From: "Bremen", To: "SV Werder Bremen"},
		{From: "Union Berlin", To: "1. FC Union Berlin"},
		{From: "Augsburg", To: "FC Augsburg"},
		{From: "Wolfsburg", To: "VfL Wolfsburg"},
		{From: "Mainz", To: "1. FSV Mainz 05"},
		{From: "Mainz 05", To: "1. FSV Mainz 05"},
		{From: "RB Leipzig", To: "RasenBallsport Leipzig"},
		{From: "Leipzig", To: "RasenBallsport Leipzig"},
		{From: "1. FC Köln", To: "FC Cologne"},
		{From: "FC Köln", To: "FC Cologne"},
		{From: "Köln", To: "FC Cologne"},
		{From: "Cologne", To: "FC Cologne"},
		{From: "Borussia Mönchengladbach", To: "Borussia M.Gladbach"},
		{From: "Mönchengladbach", To: "Borussia M.Gladbach"},
		{From: "Gladbach", To: "Borussia M.Gladbach"},
		{From: "1. FC Heidenheim 1846", To: "FC Heidenheim"},
		{From: "1. FC Heidenheim", To: "FC Heidenheim"},
		{From: "Heidenheim", To: "FC Heidenheim"},
		{From: "FC St. Pauli 1910", To: "St. Pauli"},
		{From: "FC St. Pauli", To: "St. Pauli"},

		// Serie A
		{From: "FC Internazionale Milano", To: "Inter"},
		{From: "Internazionale", To: "Inter"},
		{From: "Inter Milan", To: "Inter"},
		{From: "SSC Napoli", To: "Napoli"},
		{From: "Juve", To: "Juventus"},
		{From: "Atalanta BC", To: "Atalanta"},
		{From: "Bologna FC 1909", To: "Bologna"},
		{From: "Como 1907", To: "Como"},
		{From: "US Sassuolo Calcio", To: "Sassuolo"},
		{From: "US Cremonese", To: "Cremonese"},
		{From: "SS Lazio", To: "Lazio"},
		{From: "Parma Calcio 1913", To: "Parma"},
		{From: "US Lecce", To: "Lecce"},
		{From: "ACF Fiorentina", To: "Fiorentina"},
		{From: "Hellas Verona", To: "Verona"},
		{From: "Genoa CFC", To: "Genoa"},
		{From: "AC Pisa 1909", To: "Pisa"},

		// Ligue 1
		{From: "PSG", To: "Paris Saint-Germain"},
		{From: "Olympique de Marseille", To: "Marseille"},
		{From: "RC Strasbourg Alsace", To: "Strasbourg"},
		{From: "Olympique Lyonnais", To: "Lyon"},
		{From: "Racing Club de Lens", To: "Lens"},
		{From: "Lille OSC", To: "Lille"},
		{From: "Stade Rennais FC 1901", To: "Rennes"},
		{From: "Stade Brestois 29", To: "Brest"},
		{From: "OGC Nice", To: "Nice"},
		{From: "FC Lorient", To: "Lorient"},
		{From: "Le Havre AC", To: "Le Havre"},
		{From: "FC Nantes", To: "Nantes"},
		{From: "AJ Auxerre", To: "Auxerre"},
		{From: "Angers SCO", To: "Angers"},
		{From: "FC Metz", To: "Metz"},
	}
}
