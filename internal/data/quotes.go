package data

import "github.com/Abdullah-819/786Times/internal/models"

// Quotes are shown on the dashboard header.
var Quotes = []models.Quote{
	{Arabic: "إِنَّ مَعَ الْعُسْرِ يُسْرًا", Translation: "Indeed, with hardship [will be] ease. (Quran 94:6)"},
	{Arabic: "لَا يُكَلِّفُ اللَّهُ نَفْسًا إِلَّا وُسْعَهَا", Translation: "Allah does not burden a soul beyond that it can bear. (Quran 2:286)"},
	{Arabic: "فَإِنَّ مَعَ الْعُسْرِ يُسْرًا", Translation: "For indeed, with hardship [will be] ease. (Quran 94:5)"},
	{Arabic: "وَاسْتَعِينُوا بِالصَّبْرِ وَالصَّلَاةِ", Translation: "And seek help through patience and prayer. (Quran 2:45)"},
	{Arabic: "إِنَّ اللَّهَ مَعَ الصَّابِرِينَ", Translation: "Indeed, Allah is with the patient. (Quran 2:153)"},
}

// IntroVerses rotate on each visit to the section selection screen.
var IntroVerses = []models.Quote{
	{Arabic: "إِقْرَأْ بِاسْمِ رَبِّكَ الَّذِي خَلَقَ", Translation: "Read! In the name of your Lord who created", Reference: "Surah Al-Alaq [96:1]"},
	{Arabic: "وَالَّذِينَ جَاهَدُوا فِينَا لَنَهْدِيَنَّهُمْ سُبُلَنَا", Translation: "And those who strive for Us - We will surely guide them to Our ways.", Reference: "Surah Al-Ankabut [29:69]"},
	{Arabic: "إِيَّاكَ نَعْبُدُ وَإِيَّاكَ نَسْتَعِينُ", Translation: "It is You we worship and You we ask for help.", Reference: "Surah Al-Fatiha [1:5]"},
	{Arabic: "رَبِّ زِدْنِي عِلْمًا", Translation: "My Lord, increase me in knowledge.", Reference: "Surah Ta-Ha [20:114]"},
}

// DhikrRoutines are short reminders shown between classes.
var DhikrRoutines = []string{
	"Don't forget to recite Durud Shareef",
	"Don't forget to make Dua before class",
	"SubhanAllah, Alhamdulillah, Allahu Akbar",
	"Seek Allah's help with Istikhara",
	"Keep your tongue moist with the remembrance of Allah",
}
