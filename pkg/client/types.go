package client

import "encoding/json"

// Course is a degree course with its nested display sections
type Course struct {
	ID              string              `json:"_id,omitempty"`
	Slug            string              `json:"slug"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	HeroImage       string              `json:"heroImage"`
	Programs        []CourseProgram     `json:"programs"`
	Features        []CourseFeature     `json:"features"`
	Testimonials    []CourseTestimonial `json:"testimonials"`
	FAQs            []CourseFAQ         `json:"faqs"`
	Curriculum      []CourseCurriculum  `json:"curriculum"`
	Software        []CourseSoftware    `json:"software"`
	CareerProspects []CareerProspect    `json:"careerProspects"`
	CTATitle        string              `json:"ctaTitle"`
	CTADescription  string              `json:"ctaDescription"`
	BrochurePDFURL  string              `json:"brochurePdfUrl,omitempty"`
	IsActive        bool                `json:"isActive"`
	MetaTitle       string              `json:"metaTitle,omitempty"`
	MetaDescription string              `json:"metaDescription,omitempty"`
	MetaKeywords    string              `json:"metaKeywords,omitempty"`
	CreatedAt       string              `json:"createdAt,omitempty"`
	UpdatedAt       string              `json:"updatedAt,omitempty"`

	// Synthesized is set on fallback courses built locally, never by the backend
	Synthesized bool `json:"synthesized,omitempty"`
}

// CourseProgram is a specialization offered within a course
type CourseProgram struct {
	ID                string `json:"_id,omitempty"`
	Title             string `json:"title"`
	Duration          string `json:"duration"`
	Description       string `json:"description"`
	ImageURL          string `json:"imageUrl"`
	DetailsURL        string `json:"detailsUrl"`
	Order             int    `json:"order"`
	IsActive          bool   `json:"isActive"`
	Slug              string `json:"slug,omitempty"`
	Value             string `json:"value,omitempty"`
	BrochurePDFURL    string `json:"brochurePdfUrl,omitempty"`
	ParentCourseSlug  string `json:"parentCourseSlug,omitempty"`
	ParentCourseTitle string `json:"parentCourseTitle,omitempty"`

	Synthesized bool `json:"synthesized,omitempty"`
}

type CourseFeature struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Order       int    `json:"order"`
}

type CourseTestimonial struct {
	ID              string `json:"_id,omitempty"`
	StudentName     string `json:"studentName"`
	StudentImage    string `json:"studentImage,omitempty"`
	TestimonialText string `json:"testimonialText"`
	YouTubeURL      string `json:"youtubeUrl,omitempty"`
	Course          string `json:"course,omitempty"`
	Batch           string `json:"batch,omitempty"`
	Order           int    `json:"order"`
	IsActive        bool   `json:"isActive"`
}

type CourseFAQ struct {
	ID       string `json:"_id,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    int    `json:"order"`
	IsActive bool   `json:"isActive"`
}

type CourseCurriculum struct {
	ID          string   `json:"_id,omitempty"`
	Year        string   `json:"year"`
	Semester    string   `json:"semester"`
	Subjects    []string `json:"subjects"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Order       int      `json:"order"`
}

type CourseSoftware struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	LogoURL     string `json:"logoUrl"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
}

type CareerProspect struct {
	ID          string   `json:"_id,omitempty"`
	Title       string   `json:"title"`
	Roles       []string `json:"roles"`
	Description string   `json:"description,omitempty"`
	Order       int      `json:"order"`
}

// BlogPost is a published article
type BlogPost struct {
	ID           string        `json:"_id,omitempty" yaml:"id"`
	Slug         string        `json:"slug" yaml:"slug"`
	Title        string        `json:"title" yaml:"title"`
	Excerpt      string        `json:"excerpt" yaml:"excerpt"`
	HeroImage    string        `json:"heroImage" yaml:"heroImage"`
	Category     string        `json:"category" yaml:"category"`
	Date         string        `json:"date" yaml:"date"`
	ReadTime     string        `json:"readTime" yaml:"readTime"`
	Author       BlogAuthor    `json:"author" yaml:"author"`
	Sections     []BlogSection `json:"sections" yaml:"sections"`
	RelatedPosts []string      `json:"relatedPosts" yaml:"relatedPosts"`
	IsPublished  bool          `json:"isPublished" yaml:"isPublished"`
	Views        int           `json:"views" yaml:"views"`
	CreatedAt    string        `json:"createdAt,omitempty" yaml:"-"`
	UpdatedAt    string        `json:"updatedAt,omitempty" yaml:"-"`
}

type BlogAuthor struct {
	ID    string `json:"_id,omitempty" yaml:"-"`
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image" yaml:"image"`
}

type BlogSection struct {
	ID         string   `json:"id" yaml:"id"`
	Title      string   `json:"title" yaml:"title"`
	Content    string   `json:"content" yaml:"content"`
	Image      string   `json:"image,omitempty" yaml:"image"`
	Highlights []string `json:"highlights,omitempty" yaml:"highlights"`
}

type Testimonial struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Feedback  string `json:"feedback"`
	ImageURL  string `json:"imageUrl"`
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type StudentClub struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Order       int    `json:"order"`
}

type CampusEvent struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Order       int    `json:"order"`
}

type Membership struct {
	ID   string `json:"_id"`
	Src  string `json:"src"`
	Name string `json:"name"`
}

type Advisor struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type IndustryPartner struct {
	ID        string `json:"_id,omitempty"`
	Name      string `json:"name"`
	Src       string `json:"src,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Enquiry statuses
const (
	EnquiryNew           = "new"
	EnquiryContacted     = "contacted"
	EnquiryEnrolled      = "enrolled"
	EnquiryNotInterested = "not-interested"
)

// Enquiry is a lead captured by one of the site forms
type Enquiry struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	City        string `json:"city"`
	Course      string `json:"course"`
	Status      string `json:"status,omitempty"`
	Message     string `json:"message,omitempty"`
	Source      string `json:"source,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

type EnquiryStats struct {
	Total         int `json:"total"`
	New           int `json:"new"`
	Contacted     int `json:"contacted"`
	Enrolled      int `json:"enrolled"`
	NotInterested int `json:"notInterested"`
}

// About-us content
type HeroImage struct {
	ID       string `json:"_id,omitempty"`
	ImageURL string `json:"imageUrl"`
	AltText  string `json:"altText"`
	Order    int    `json:"order"`
}

type Statistic struct {
	ID          string `json:"_id,omitempty"`
	Number      string `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Order       int    `json:"order"`
}

type CoreValue struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Order       int    `json:"order"`
}

type CampusImage struct {
	ID       string `json:"_id,omitempty"`
	ImageURL string `json:"imageUrl"`
	AltText  string `json:"altText"`
	Order    int    `json:"order"`
}

// About-us content section types
const (
	SectionWhoWeAre       = "who-we-are"
	SectionAboutUs        = "about-us"
	SectionVision         = "vision"
	SectionMission        = "mission"
	SectionCoreValuesText = "core-values-text"
)

type AboutContent struct {
	ID          string `json:"_id,omitempty"`
	SectionType string `json:"sectionType"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"isActive"`
}

// Life at campus
type LifeSection struct {
	ID          string   `json:"_id,omitempty"`
	SectionType string   `json:"sectionType"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Content     string   `json:"content,omitempty"`
	Images      []string `json:"images,omitempty"`
	Order       int      `json:"order"`
	IsActive    bool     `json:"isActive"`
}

type StudentService struct {
	ID          string `json:"_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
}

type SportsFacility struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
	Category    string `json:"category,omitempty"`
}

type GalleryImage struct {
	ID       string `json:"_id,omitempty"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	Category string `json:"category"`
	Order    int    `json:"order"`
}

// Applicant statuses
const (
	ApplicantPending     = "pending"
	ApplicantReviewed    = "reviewed"
	ApplicantShortlisted = "shortlisted"
	ApplicantRejected    = "rejected"
	ApplicantHired       = "hired"
)

type Applicant struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ResumeURL   string `json:"resumeUrl"`
	CoverLetter string `json:"coverLetter"`
	Status      string `json:"status,omitempty"`
	AppliedAt   string `json:"appliedAt,omitempty"`
}

// CareerPostInput is the writable part of a career post
type CareerPostInput struct {
	Title        string   `json:"title"`
	Place        string   `json:"place"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	PartTime     bool     `json:"partTime"`
	IsActive     bool     `json:"isActive"`
}

type CareerPost struct {
	CareerPostInput
	ID         string      `json:"_id"`
	Applicants []Applicant `json:"applicants,omitempty"`
	CreatedAt  string      `json:"createdAt,omitempty"`
	UpdatedAt  string      `json:"updatedAt,omitempty"`
}

type Download struct {
	ID            string `json:"_id,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	FileURL       string `json:"fileUrl"`
	FileName      string `json:"fileName"`
	FileSize      string `json:"fileSize"`
	UploadDate    string `json:"uploadDate"`
	DownloadCount int    `json:"downloadCount"`
	IsActive      bool   `json:"isActive"`
}

type DownloadCategory struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	IsActive      bool   `json:"isActive"`
	CreatedDate   string `json:"createdDate"`
	DownloadCount int    `json:"downloadCount"`
}

// FreeCourseDetail describes one delivery option; Duration is in weeks
type FreeCourseDetail struct {
	ID          string `json:"_id,omitempty"`
	Duration    int    `json:"duration"`
	Mode        string `json:"mode"`
	Certificate string `json:"certificate"`
	Level       string `json:"level"`
}

// FreeCourseInput is the writable part of a free course
type FreeCourseInput struct {
	Name                string             `json:"name"`
	ShortDescription    string             `json:"shortDescription"`
	Details             []FreeCourseDetail `json:"details"`
	WhyLearnThisCourse  string             `json:"whyLearnThisCourse"`
	WhatYouWillLearn    []string           `json:"whatYouWillLearn"`
	CareerOpportunities string             `json:"careerOpportunities"`
	CourseBenefits      []string           `json:"courseBenefits"`
	ImageURL            string             `json:"imageUrl"`
	IsActive            bool               `json:"isActive"`
	MetaTitle           string             `json:"metaTitle"`
	MetaDescription     string             `json:"metaDescription"`
	MetaKeywords        string             `json:"metaKeywords"`
}

type FreeCourse struct {
	FreeCourseInput
	ID        string `json:"_id"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Ack is the decoded reply to a form submission
type Ack struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`

	// StatusCode is the HTTP status of the reply, not part of the body
	StatusCode int `json:"-"`
}
