package usecase_catalog

// DefaultTitles backs the home page listing.
var DefaultTitles = []string{
	"The Shawshank Redemption",
	"The Godfather",
	"The Dark Knight",
	"The Godfather Part II",
	"12 Angry Men",
	"Schindler's List",
	"The Lord of the Rings: The Return of the King",
	"Pulp Fiction",
	"The Lord of the Rings: The Fellowship of the Ring",
	"The Good, the Bad and the Ugly",
	"Forrest Gump",
	"Fight Club",
	"The Lord of the Rings: The Two Towers",
	"Inception",
	"Star Wars: Episode V - The Empire Strikes Back",
	"The Matrix",
	"Goodfellas",
	"One Flew Over the Cuckoo's Nest",
	"Se7en",
	"Interstellar",
	"It's a Wonderful Life",
	"Seven Samurai",
	"The Silence of the Lambs",
	"Saving Private Ryan",
	"City of God",
	"Life Is Beautiful",
	"The Green Mile",
	"Star Wars",
	"Terminator 2: Judgment Day",
	"Back to the Future",
	"Spirited Away",
	"The Pianist",
	"Psycho",
	"Parasite",
	"Gladiator",
	"The Lion King",
	"Leon: The Professional",
	"The Departed",
	"American History X",
	"Whiplash",
	"The Prestige",
	"Harakiri",
	"The Usual Suspects",
	"Casablanca",
	"Grave of the Fireflies",
	"The Intouchables",
	"Cinema Paradiso",
	"Modern Times",
	"Once Upon a Time in the West",
	"Rear Window",
	"Alien",
	"City Lights",
	"Apocalypse Now",
	"Memento",
	"Django Unchained",
	"Raiders of the Lost Ark",
	"WALL-E",
	"The Lives of Others",
	"Sunset Blvd.",
	"Paths of Glory",
	"The Shining",
	"The Great Dictator",
	"Avengers: Infinity War",
	"Witness for the Prosecution",
	"Aliens",
	"Spider-Man: Into the Spider-Verse",
	"American Beauty",
	"Dr. Strangelove",
	"The Dark Knight Rises",
	"Oldboy",
	"Joker",
	"Amadeus",
	"Braveheart",
	"Toy Story",
	"Coco",
	"Inglourious Basterds",
	"Das Boot",
	"Princess Mononoke",
	"Avengers: Endgame",
	"Once Upon a Time in America",
	"Good Will Hunting",
	"Your Name.",
	"Requiem for a Dream",
	"Toy Story 3",
	"3 Idiots",
	"Singin' in the Rain",
	"Star Wars: Episode VI - Return of the Jedi",
	"Eternal Sunshine of the Spotless Mind",
	"2001: A Space Odyssey",
	"Reservoir Dogs",
	"High and Low",
	"Citizen Kane",
	"Lawrence of Arabia",
	"M",
	"North by Northwest",
	"Vertigo",
	"Amelie",
	"A Clockwork Orange",
	"Full Metal Jacket",
	"Double Indemnity",
	"The Apartment",
	"Scarface",
	"Taxi Driver",
	"To Kill a Mockingbird",
	"The Sting",
	"Up",
	"L.A. Confidential",
	"Heat",
	"Indiana Jones and the Last Crusade",
	"Die Hard",
	"Green Book",
	"Metropolis",
	"Snatch",
	"Bicycle Thieves",
	"Downfall",
	"Batman Begins",
	"Some Like It Hot",
	"The Kid",
	"The Wolf of Wall Street",
	"Judgment at Nuremberg",
	"Unforgiven",
	"Ran",
	"Casino",
	"The Treasure of the Sierra Madre",
	"Pan's Labyrinth",
	"A Beautiful Mind",
	"The Sixth Sense",
	"Jurassic Park",
	"No Country for Old Men",
	"Shutter Island",
	"Kill Bill: Vol. 1",
	"The Truman Show",
	"Finding Nemo",
	"Mad Max: Fury Road",
	"Blade Runner",
}
