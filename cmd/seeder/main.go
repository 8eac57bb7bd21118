package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/poiesic/peermatch"
	"github.com/poiesic/peermatch/core"
	"github.com/poiesic/peermatch/match"
)

// defaultProfiles mixes every profile shape the exporters produce: bare
// strings next to canonical and alias-keyed objects for skills, languages,
// courses and experience.
var defaultProfiles = []byte(`[
  {
    "email": "maya.chen@university.edu",
    "full_name": "Maya Chen",
    "major": "Computer Science",
    "program": "BSc",
    "year": "Junior",
    "courses": ["Operating Systems", {"course_name": "Distributed Systems"}, "Databases"],
    "technical_skills": [
      "Python",
      {"skillName": "Go", "skillProficiency": "advanced"},
      {"name": "SQL", "proficiency": "beginner"}
    ],
    "soft_skills": ["Public speaking", "Mentoring"],
    "languages": [
      {"language": "Mandarin", "languageProficiency": "native"},
      "Spanish"
    ],
    "academic_interests": ["Distributed systems", "Databases"],
    "personal_interests": ["Climbing", "Board games"],
    "professional_experience": [
      {"jobTitle": "Software Engineering Intern", "company": "Streamline", "jobDescription": "Built ingestion services in Go"},
      "Teaching Assistant"
    ],
    "status": "active"
  },
  {
    "email": "diego.alvarez@university.edu",
    "full_name": "Diego Alvarez",
    "major": "Electrical Engineering",
    "program": "BSc",
    "year": "Senior",
    "courses": ["Signals and Systems", "Embedded Programming"],
    "technical_skills": ["C", "MATLAB", {"skillName": "Rust", "skillProficiency": "beginner"}],
    "languages": ["Spanish", "English"],
    "academic_interests": ["Robotics", "Signal processing"],
    "personal_interests": ["Soccer"],
    "professional_experience": [
      {"title": "Hardware Intern", "company": "Voltaic Labs", "description": "Bring-up and test firmware"}
    ]
  },
  {
    "email": "priya.nair@university.edu",
    "full_name": "Priya Nair",
    "major": "Data Science",
    "program": "MSc",
    "year": "Masters",
    "courses": [{"name": "Statistical Learning"}, "Deep Learning"],
    "technical_skills": [
      {"skillName": "Python", "skillProficiency": "advanced"},
      {"skillName": "PyTorch", "skillProficiency": "advanced"},
      "R"
    ],
    "languages": [{"language": "Malayalam", "languageProficiency": "native"}, {"language": "Hindi"}],
    "academic_interests": ["Machine learning", "Computer vision"],
    "personal_interests": ["Photography", "Climbing"],
    "professional_experience": [
      {"jobTitle": "Data Science Intern", "company": "Northfield Analytics"}
    ]
  },
  {
    "email": "tom.okafor@university.edu",
    "full_name": "Tom Okafor",
    "major": "Mechanical Engineering",
    "program": "BSc",
    "year": "Sophomore",
    "courses": ["Thermodynamics", "CAD Fundamentals"],
    "technical_skills": ["SolidWorks", "Python"],
    "languages": ["English", "Igbo"],
    "academic_interests": ["Renewable energy"],
    "personal_interests": ["Cycling", "Chess"]
  },
  {
    "email": "lena.fischer@university.edu",
    "full_name": "Lena Fischer",
    "major": "Mathematics",
    "program": "BSc",
    "year": "Junior",
    "courses": ["Real Analysis", "Abstract Algebra", {"course_name": "Numerical Methods"}],
    "technical_skills": ["Python", {"skillName": "Julia", "skillProficiency": "intermediate"}],
    "languages": [{"language": "German", "languageProficiency": "native"}, "French"],
    "academic_interests": ["Numerical analysis", "Machine learning"],
    "personal_interests": ["Violin", "Board games"]
  },
  {
    "email": "sam.whitfield@university.edu",
    "full_name": "Sam Whitfield",
    "major": "Biology",
    "program": "BSc",
    "year": "Freshman",
    "courses": ["Intro to Genetics"],
    "technical_skills": ["Excel"],
    "languages": ["English"],
    "personal_interests": ["Birdwatching"]
  },
  {
    "email": "yuki.tanaka@university.edu",
    "full_name": "Yuki Tanaka",
    "major": "Human-Computer Interaction",
    "program": "MSc",
    "year": "Masters",
    "courses": ["Interaction Design", "Research Methods"],
    "technical_skills": ["Figma", "JavaScript", {"name": "TypeScript", "proficiency": "advanced"}],
    "languages": [{"language": "Japanese", "languageProficiency": "native"}, "English"],
    "academic_interests": ["Accessibility", "Visualization"],
    "personal_interests": ["Photography"],
    "professional_experience": ["UX Research Assistant"]
  },
  {
    "email": "omar.haddad@university.edu",
    "full_name": "Omar Haddad",
    "major": "Computer Science",
    "program": "PhD",
    "year": "Doctoral",
    "courses": ["Advanced Operating Systems", "Formal Verification"],
    "technical_skills": [
      {"skillName": "Go", "skillProficiency": "advanced"},
      {"skillName": "C++", "skillProficiency": "advanced"},
      "Coq"
    ],
    "languages": [{"language": "Arabic", "languageProficiency": "native"}, "French", "English"],
    "academic_interests": ["Distributed systems", "Verification"],
    "personal_interests": ["Chess", "Climbing"],
    "professional_experience": [
      {"jobTitle": "Research Assistant", "company": "Systems Lab", "jobDescription": "Consensus protocol implementations"}
    ]
  }
]`)

var (
	dataDir      = flag.String("data-dir", "./peermatch_db", "path to the data directory")
	seedFileName = flag.String("file", "", "JSON file of profiles to seed")
	demoMatches  = flag.Bool("matches", false, "print matches for the first seeded profile")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// decodeProfiles parses a JSON array of profiles in any exporter shape.
func decodeProfiles(data []byte) ([]*core.Profile, error) {
	var profiles []*core.Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("decoding profiles: %w", err)
	}
	return profiles, nil
}

func main() {
	data := defaultProfiles
	if *seedFileName != "" {
		fileData, err := os.ReadFile(*seedFileName)
		if err != nil {
			panic(err)
		}
		data = fileData
	}

	profiles, err := decodeProfiles(data)
	if err != nil {
		panic(err)
	}

	db, err := peermatch.NewDatabase(*dataDir)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	pipeline, err := db.Pipeline()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	for _, profile := range profiles {
		if err := pipeline.Ingest(ctx, profile); err != nil {
			panic(err)
		}
	}
	pipeline.Close()

	fmt.Printf("Seeded %d profiles into %s\n", len(profiles), *dataDir)

	if !*demoMatches || len(profiles) == 0 {
		return
	}

	// Show who the first seeded student would be matched with.
	user, err := db.Repositories().Profiles.GetProfileByEmail(ctx, profiles[0].Email)
	if err != nil {
		panic(err)
	}
	finder, err := db.Finder()
	if err != nil {
		panic(err)
	}
	matches, err := finder.FindMatches(ctx, user, match.FindOptions{Limit: 5})
	if err != nil {
		panic(err)
	}

	fmt.Printf("Top matches for %s:\n", user.FullName)
	for i, m := range matches {
		fmt.Printf("%d: %s (%s %s) [%0.3f, %s]\n",
			i, m.Profile.FullName, m.Profile.Major, m.Profile.Year,
			m.Similarity.Score, m.Similarity.Level)
		for _, common := range m.Similarity.Commonalities {
			fmt.Printf("   - %s\n", common)
		}
	}
}
