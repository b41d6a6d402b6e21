package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"resumelens/web/internal/analyzer"
	"resumelens/web/internal/config"
)

// Seeds the analyzer backend with the sample resumes under
// ./sample_resumes (or the directory given as the first argument), then
// requests a summary for each so the library screen has data to show.
func main() {
	log.Println("🚀 Starting resume seeding...")

	// Load configuration
	cfg := config.Load()

	client := analyzer.NewClient(cfg.Analyzer.BaseURL, cfg.Analyzer.RequestTimeout)
	log.Printf("✅ Analyzer client initialized (%s)", cfg.Analyzer.BaseURL)

	dir := "./sample_resumes"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("❌ Failed to read %s: %v", dir, err)
	}

	ctx := context.Background()

	successCount := 0
	failCount := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".pdf" && ext != ".docx" && ext != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		log.Printf("\n📄 Processing: %s", entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ❌ Failed to read file: %v", err)
			failCount++
			continue
		}

		log.Printf("   ⬆️  Uploading %d bytes...", len(data))
		fileID, err := client.UploadResume(ctx, entry.Name(), data)
		if err != nil {
			log.Printf("   ❌ Failed to upload: %v", err)
			failCount++
			continue
		}
		log.Printf("   ✅ Uploaded as %s", fileID)

		log.Printf("   📝 Summarizing with %s...", cfg.Analyzer.DefaultModel)
		summary, err := client.Summarize(ctx, fileID, cfg.Analyzer.DefaultModel)
		if err != nil {
			log.Printf("   ❌ Failed to summarize: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Summary ready (%d characters)", len(summary))
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Seeding Summary:")
	log.Printf("   ✅ Successful: %d resumes", successCount)
	log.Printf("   ❌ Failed: %d resumes", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some resumes failed to seed. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All resumes seeded successfully!")
}
