package catalog

// builtins returns the built-in template set in registration order. The
// order is part of the matcher contract: on a score tie the earliest
// registered template wins, and "todo" is the designated fallback.
func builtins() []Template {
	return []Template{
		{
			ID:       "youtube",
			Keywords: []string{"youtube", "video", "transcript", "summarize video", "video summary"},
			Frontend: youtubeFrontend,
			Backend:  youtubeBackend,
			Database: youtubeDatabase,
			Deploy:   youtubeDeploy,
		},
		{
			ID:       "invoice",
			Keywords: []string{"invoice", "bill", "receipt", "billing", "payment tracker"},
			Frontend: invoiceFrontend,
			Backend:  invoiceBackend,
			Database: invoiceDatabase,
			Deploy:   invoiceDeploy,
		},
		{
			ID:       "scraper",
			Keywords: []string{"scrape", "scraper", "web scraping", "extract data", "crawl"},
			Frontend: scraperFrontend,
			Backend:  scraperBackend,
			Database: scraperDatabase,
			Deploy:   scraperDeploy,
		},
		{
			ID:       "todo",
			Keywords: []string{"todo", "task", "to-do", "task manager", "checklist"},
			Frontend: todoFrontend,
			Backend:  todoBackend,
			Database: todoDatabase,
			Deploy:   todoDeploy,
		},
		{
			ID:       "url_shortener",
			Keywords: []string{"url", "link", "shortener", "shorten", "tiny url"},
			Frontend: urlShortenerFrontend,
			Backend:  urlShortenerBackend,
			Database: urlShortenerDatabase,
			Deploy:   urlShortenerDeploy,
		},
		{
			ID:       "recipe",
			Keywords: []string{"recipe", "cooking", "food", "ingredients", "meal"},
			Frontend: recipeFrontend,
			Backend:  recipeBackend,
			Database: recipeDatabase,
			Deploy:   recipeDeploy,
		},
		{
			ID:       "expense",
			Keywords: []string{"expense", "budget", "spending", "finance", "money tracker"},
			Frontend: expenseFrontend,
			Backend:  expenseBackend,
			Database: expenseDatabase,
			Deploy:   expenseDeploy,
		},
		{
			ID:       "notes",
			Keywords: []string{"notes", "note-taking", "notebook", "markdown", "memo"},
			Frontend: notesFrontend,
			Backend:  notesBackend,
			Database: notesDatabase,
			Deploy:   notesDeploy,
		},
		{
			ID:       "weather",
			Keywords: []string{"weather", "forecast", "temperature", "climate"},
			Frontend: weatherFrontend,
			Backend:  weatherBackend,
			Database: weatherDatabase,
			Deploy:   weatherDeploy,
		},
		{
			ID:       "quiz",
			Keywords: []string{"quiz", "trivia", "questions", "test", "exam"},
			Frontend: quizFrontend,
			Backend:  quizBackend,
			Database: quizDatabase,
			Deploy:   quizDeploy,
		},
	}
}
