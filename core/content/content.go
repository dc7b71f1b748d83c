// Package content serves the read-only public marketing content: the home
// profile, news items and the photo gallery. Everything is seeded statically.
package content

// News categories
const (
	CategoryEvent        = "Event"
	CategoryHoliday      = "Holiday"
	CategoryAnnouncement = "Announcement"
)

type NewsItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
}

type GalleryItem struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HomeStat struct {
	Count string `json:"count"`
	Label string `json:"label"`
}

type HomeProfile struct {
	Headline string     `json:"headline"`
	Tagline  string     `json:"tagline"`
	Stats    []HomeStat `json:"stats"`
}

var news = []NewsItem{
	{
		ID:       "1",
		Title:    "Annual Sports Day 2024",
		Content:  "Get ready for the most awaited event of the year! Join us for a day filled with competition and spirit.",
		Date:     "2024-10-15",
		Category: CategoryEvent,
		ImageURL: "https://picsum.photos/seed/sports/800/400",
	},
	{
		ID:       "2",
		Title:    "New STEM Laboratory Opening",
		Content:  "We are excited to announce the inauguration of our state-of-the-art STEM lab this Friday.",
		Date:     "2024-09-20",
		Category: CategoryAnnouncement,
		ImageURL: "https://picsum.photos/seed/lab/800/400",
	},
	{
		ID:       "3",
		Title:    "Parent-Teacher Meeting",
		Content:  "Discuss your child's progress with our educators on the coming Saturday.",
		Date:     "2024-09-25",
		Category: CategoryHoliday,
		ImageURL: "https://picsum.photos/seed/ptm/800/400",
	},
}

var gallery = []GalleryItem{
	{ID: "1", URL: "https://picsum.photos/seed/school1/600/400", Title: "Science Fair", Description: "Students presenting their innovative projects."},
	{ID: "2", URL: "https://picsum.photos/seed/school2/600/400", Title: "Library Corner", Description: "Our quiet zone for avid readers."},
	{ID: "3", URL: "https://picsum.photos/seed/school3/600/400", Title: "Art Workshop", Description: "Creative hands at work in the studio."},
	{ID: "4", URL: "https://picsum.photos/seed/school4/600/400", Title: "Basketball Match", Description: "Inter-school championship finals."},
	{ID: "5", URL: "https://picsum.photos/seed/school5/600/400", Title: "Graduation Ceremony", Description: "Celebrating our senior batch successes."},
	{ID: "6", URL: "https://picsum.photos/seed/school6/600/400", Title: "Music Room", Description: "Harmonies echoing through the halls."},
}

var home = HomeProfile{
	Headline: "Empowering the Leaders of Tomorrow",
	Tagline:  "EduQuest Academy provides a nurturing environment where creativity meets academic excellence.",
	Stats: []HomeStat{
		{Count: "1,200+", Label: "Students"},
		{Count: "85+", Label: "Educators"},
		{Count: "24", Label: "Years Excellence"},
		{Count: "12", Label: "Advanced Labs"},
	},
}

type Service struct{}

func NewService() *Service { return &Service{} }

func (svc *Service) News() []NewsItem {
	out := make([]NewsItem, len(news))
	copy(out, news)
	return out
}

func (svc *Service) Gallery() []GalleryItem {
	out := make([]GalleryItem, len(gallery))
	copy(out, gallery)
	return out
}

func (svc *Service) Home() HomeProfile {
	profile := home
	profile.Stats = make([]HomeStat, len(home.Stats))
	copy(profile.Stats, home.Stats)
	return profile
}
