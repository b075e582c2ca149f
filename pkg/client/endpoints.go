package client

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

const (
	DefaultBackendURL = "https://backend-rakj.onrender.com"
	DefaultAPIBaseURL = "https://backend-rakj.onrender.com/api/v1"
)

// Endpoint is a logical backend operation.
// Path is relative to the API base URL unless Root is set, and may contain
// {param} placeholders filled positionally by Registry.URL.
type Endpoint struct {
	Name   string
	Method string
	Path   string
	Root   bool
}

func get(name, path string) Endpoint    { return Endpoint{Name: name, Method: http.MethodGet, Path: path} }
func post(name, path string) Endpoint   { return Endpoint{Name: name, Method: http.MethodPost, Path: path} }
func put(name, path string) Endpoint    { return Endpoint{Name: name, Method: http.MethodPut, Path: path} }
func patch(name, path string) Endpoint  { return Endpoint{Name: name, Method: http.MethodPatch, Path: path} }
func remove(name, path string) Endpoint { return Endpoint{Name: name, Method: http.MethodDelete, Path: path} }

var (
	// Authentication and user profile
	Login         = post("LOGIN", "/auth/login")
	Register      = post("REGISTER", "/auth/register")
	Logout        = post("LOGOUT", "/auth/logout")
	Profile       = get("PROFILE", "/user/profile")
	UpdateProfile = put("UPDATE_PROFILE", "/user/profile")

	// Admissions
	SubmitApplication    = post("SUBMIT_APPLICATION", "/admissions/apply")
	GetApplicationStatus = get("GET_APPLICATION_STATUS", "/admissions/status")

	// Courses
	GetCourses               = get("GET_COURSES", "/courses")
	GetCourseBySlug          = get("GET_COURSE_BY_SLUG", "/courses/slug/{slug}")
	GetCourseByID            = get("GET_COURSE_BY_ID", "/courses/{id}")
	CreateCourse             = post("CREATE_COURSE", "/courses")
	UpdateCourse             = put("UPDATE_COURSE", "/courses/{id}")
	DeleteCourse             = remove("DELETE_COURSE", "/courses/{id}")
	GetCoursePrograms        = get("GET_COURSE_PROGRAMS", "/courses/programs")
	GetCourseFeatures        = get("GET_COURSE_FEATURES", "/courses/features")
	GetCourseTestimonials    = get("GET_COURSE_TESTIMONIALS", "/courses/testimonials")
	GetCourseFAQs            = get("GET_COURSE_FAQS", "/courses/faqs")
	GetCourseCurriculum      = get("GET_COURSE_CURRICULUM", "/courses/curriculum")
	GetCourseSoftware        = get("GET_COURSE_SOFTWARE", "/courses/software")
	GetCourseCareerProspects = get("GET_COURSE_CAREER_PROSPECTS", "/courses/career-prospects")
	GenerateCourseSlug       = get("GENERATE_SLUG", "/courses/generate-slug/{title}")

	// Payments
	CreatePayment = post("CREATE_PAYMENT", "/payments/create")
	VerifyPayment = post("VERIFY_PAYMENT", "/payments/verify")

	// Contact and enquiries
	SubmitEnquiry           = post("SUBMIT_ENQUIRY", "/enquiries")
	SubmitCounselingRequest = post("SUBMIT_COUNSELING_REQUEST", "/contact/counseling")
	AddContact              = post("ADD_CONTACT", "/contact/addcontact")
	GetEnquiries            = get("GET_ENQUIRIES", "/enquiries")
	GetEnquiryByID          = get("GET_ENQUIRY_BY_ID", "/enquiries/{id}")
	UpdateEnquiryStatus     = patch("UPDATE_ENQUIRY_STATUS", "/enquiries/{id}/status")
	DeleteEnquiry           = remove("DELETE_ENQUIRY", "/enquiries/{id}")
	GetEnquiryStats         = get("GET_ENQUIRY_STATS", "/enquiries/stats")

	// News, gallery and testimonials
	GetNews          = get("GET_NEWS", "/news")
	GetBlogPosts     = get("GET_BLOG_POSTS", "/blog")
	GetGalleryImages = get("GET_GALLERY_IMAGES", "/gallery")
	GetTestimonials  = get("GET_TESTIMONIALS", "/testimonials/gettestimonials")

	// Blog
	GetBlogs           = get("GET_BLOGS", "/blog/getblogs")
	GetAllBlogs        = get("GET_ALL_BLOGS", "/blog/getallblogs")
	GetPublishedBlogs  = get("GET_PUBLISHED_BLOGS", "/blog/getpublishedblogs")
	GetPopularBlogs    = get("GET_POPULAR_BLOGS", "/blog/getpopularblogs")
	GetBlogByID        = get("GET_BLOG_BY_ID", "/blog/getblogbyid/{id}")
	GetBlogBySlug      = get("GET_BLOG_BY_SLUG", "/blog/getblogbyslug/{slug}")
	GetBlogsByCategory = get("GET_BLOGS_BY_CATEGORY", "/blog/getblogsbycategory/{category}")

	// Campus life
	GetStudentClubs = get("GET_STUDENT_CLUBS", "/studentclub/getstudentclubs")
	GetCampusEvents = get("GET_CAMPUS_EVENTS", "/campusevent/getcampusevents")
	GetMemberships  = get("GET_MEMBERSHIP", "/membership/getMembership")

	// Advisors
	GetAdvisors    = get("GET_ADVISORS", "/advisor/getadvisors")
	GetAdvisorByID = get("GET_ADVISOR_BY_ID", "/advisor/getadvisorsbyid/{id}")
	CreateAdvisor  = post("CREATE_ADVISOR", "/advisor/addadvisor")
	UpdateAdvisor  = put("UPDATE_ADVISOR", "/advisor/updateadvisor/{id}")
	DeleteAdvisor  = remove("DELETE_ADVISOR", "/advisor/deleteadvisor/{id}")

	// Industry partners
	GetIndustryPartners    = get("GET_INDUSTRY_PARTNERS", "/logo/getlogo")
	GetIndustryPartnerByID = get("GET_INDUSTRY_PARTNER_BY_ID", "/logo/getlogoById/{id}")
	CreateIndustryPartner  = post("CREATE_INDUSTRY_PARTNER", "/logo/addlogo")
	UpdateIndustryPartner  = put("UPDATE_INDUSTRY_PARTNER", "/logo/updatelogo/{id}")
	DeleteIndustryPartner  = remove("DELETE_INDUSTRY_PARTNER", "/logo/deletelogo/{id}")

	// Careers
	GetCareerPosts               = get("GET_CAREER_POSTS", "/career-posts/getallcareerposts")
	GetCareerPostsWithApplicants = get("GET_CAREER_POSTS_WITH_APPLICANTS", "/career-posts/getallcareerposts?populate=applicants")
	GetActiveCareerPosts         = get("GET_ACTIVE_CAREER_POSTS", "/career-posts/getactivecareerposts")
	GetCareerPostByID            = get("GET_CAREER_POST_BY_ID", "/career-posts/getcareerpostbyid/{id}")
	CreateCareerPost             = post("CREATE_CAREER_POST", "/career-posts/addcareerpost")
	UpdateCareerPost             = put("UPDATE_CAREER_POST", "/career-posts/updatecareerpost/{id}")
	DeleteCareerPost             = remove("DELETE_CAREER_POST", "/career-posts/deletecareerpost/{id}")
	ToggleCareerPostStatus       = put("TOGGLE_CAREER_POST_STATUS", "/career-posts/togglecareerpoststatus/{id}")
	SubmitJobApplication         = post("SUBMIT_JOB_APPLICATION", "/career-posts/apply/{careerId}")
	GetApplicants                = get("GET_APPLICANTS", "/career-posts/applicants/{careerId}")
	UpdateApplicantStatus        = put("UPDATE_APPLICANT_STATUS", "/career-posts/applicants/{careerId}/{applicantId}/status")

	// About us
	GetHeroImages      = get("GET_HERO_IMAGES", "/about-us/hero-images/getheroimages")
	AddHeroImage       = post("ADD_HERO_IMAGE", "/about-us/hero-images/addheroimage")
	UpdateHeroImage    = put("UPDATE_HERO_IMAGE", "/about-us/hero-images/updateheroimage/{id}")
	DeleteHeroImage    = remove("DELETE_HERO_IMAGE", "/about-us/hero-images/deleteheroimage/{id}")
	GetContentByType   = get("GET_CONTENT_BY_TYPE", "/about-us/content/getcontentbytype/{sectionType}")
	AddOrUpdateContent = post("ADD_OR_UPDATE_CONTENT", "/about-us/content/addorupdatecontent")
	GetStatistics      = get("GET_STATISTICS", "/about-us/statistics/getstatistics")
	AddStatistic       = post("ADD_STATISTIC", "/about-us/statistics/addstatistic")
	UpdateStatistic    = put("UPDATE_STATISTIC", "/about-us/statistics/updatestatistic/{id}")
	DeleteStatistic    = remove("DELETE_STATISTIC", "/about-us/statistics/deletestatistic/{id}")
	GetCoreValues      = get("GET_CORE_VALUES", "/about-us/core-values/getcorevalues")
	AddCoreValue       = post("ADD_CORE_VALUE", "/about-us/core-values/addcorevalue")
	UpdateCoreValue    = put("UPDATE_CORE_VALUE", "/about-us/core-values/updatecorevalue/{id}")
	DeleteCoreValue    = remove("DELETE_CORE_VALUE", "/about-us/core-values/deletecorevalue/{id}")
	GetCampusImages    = get("GET_CAMPUS_IMAGES", "/about-us/campus-images/getcampusimages")
	AddCampusImage     = post("ADD_CAMPUS_IMAGE", "/about-us/campus-images/addcampusimage")
	UpdateCampusImage  = put("UPDATE_CAMPUS_IMAGE", "/about-us/campus-images/updatecampusimage/{id}")
	DeleteCampusImage  = remove("DELETE_CAMPUS_IMAGE", "/about-us/campus-images/deletecampusimage/{id}")

	// Life at campus
	GetLifeSections        = get("GET_LIFE_AT_INFRAME_SECTIONS", "/lifeatinframesection/getlifeatinframesections")
	AddLifeSection         = post("ADD_LIFE_AT_INFRAME_SECTION", "/lifeatinframesection/addlifeatinframesection")
	UpdateLifeSection      = put("UPDATE_LIFE_AT_INFRAME_SECTION", "/lifeatinframesection/updatelifeatinframesection/{id}")
	DeleteLifeSection      = remove("DELETE_LIFE_AT_INFRAME_SECTION", "/lifeatinframesection/deletelifeatinframesection/{id}")
	GetStudentServices     = get("GET_STUDENT_SERVICES", "/studentservice/getstudentservices")
	AddStudentService      = post("ADD_STUDENT_SERVICE", "/studentservice/addstudentservice")
	UpdateStudentService   = put("UPDATE_STUDENT_SERVICE", "/studentservice/updatestudentservice/{id}")
	DeleteStudentService   = remove("DELETE_STUDENT_SERVICE", "/studentservice/deletestudentservice/{id}")
	GetSportsFacilities    = get("GET_SPORTS_FACILITIES", "/sportsfacility/getsportsfacilities")
	AddSportsFacility      = post("ADD_SPORTS_FACILITY", "/sportsfacility/addsportsfacility")
	UpdateSportsFacility   = put("UPDATE_SPORTS_FACILITY", "/sportsfacility/updatesportsfacility/{id}")
	DeleteSportsFacility   = remove("DELETE_SPORTS_FACILITY", "/sportsfacility/deletesportsfacility/{id}")
	GetLifeGallery         = get("GET_LIFE_AT_INFRAME_GALLERY", "/galleryimage/getgalleryimages")
	AddLifeGalleryImage    = post("ADD_LIFE_AT_INFRAME_GALLERY_IMAGE", "/galleryimage/addgalleryimage")
	UpdateLifeGalleryImage = put("UPDATE_LIFE_AT_INFRAME_GALLERY_IMAGE", "/galleryimage/updategalleryimage/{id}")
	DeleteLifeGalleryImage = remove("DELETE_LIFE_AT_INFRAME_GALLERY_IMAGE", "/galleryimage/deletegalleryimage/{id}")

	// Downloads
	GetDownloads           = get("GET_DOWNLOADS", "/download/getdownloads")
	GetDownloadByID        = get("GET_DOWNLOAD_BY_ID", "/download/getdownloadbyid/{id}")
	CreateDownload         = post("CREATE_DOWNLOAD", "/download/adddownload")
	UpdateDownload         = put("UPDATE_DOWNLOAD", "/download/updatedownload/{id}")
	DeleteDownload         = remove("DELETE_DOWNLOAD", "/download/deletedownload/{id}")
	GetDownloadCategories  = get("GET_DOWNLOAD_CATEGORIES", "/download/getcategories")
	DeleteDownloadCategory = remove("DELETE_DOWNLOAD_CATEGORY", "/download/deletecategory/{id}")

	// Free courses
	GetFreeCourses         = get("GET_FREE_COURSES", "/free-courses/")
	GetFreeCourseByID      = get("GET_FREE_COURSE_BY_ID", "/free-courses/{id}")
	CreateFreeCourse       = post("CREATE_FREE_COURSE", "/free-courses/")
	UpdateFreeCourse       = put("UPDATE_FREE_COURSE", "/free-courses/{id}")
	DeleteFreeCourse       = remove("DELETE_FREE_COURSE", "/free-courses/{id}")
	ToggleFreeCourseStatus = patch("TOGGLE_FREE_COURSE_STATUS", "/free-courses/{id}/toggle-status")

	// General
	HealthCheck = Endpoint{Name: "HEALTH_CHECK", Method: http.MethodGet, Path: "/health", Root: true}
)

var allEndpoints = []Endpoint{
	Login, Register, Logout, Profile, UpdateProfile,
	SubmitApplication, GetApplicationStatus,
	GetCourses, GetCourseBySlug, GetCourseByID, CreateCourse, UpdateCourse, DeleteCourse,
	GetCoursePrograms, GetCourseFeatures, GetCourseTestimonials, GetCourseFAQs,
	GetCourseCurriculum, GetCourseSoftware, GetCourseCareerProspects, GenerateCourseSlug,
	CreatePayment, VerifyPayment,
	SubmitEnquiry, SubmitCounselingRequest, AddContact,
	GetEnquiries, GetEnquiryByID, UpdateEnquiryStatus, DeleteEnquiry, GetEnquiryStats,
	GetNews, GetBlogPosts, GetGalleryImages, GetTestimonials,
	GetBlogs, GetAllBlogs, GetPublishedBlogs, GetPopularBlogs, GetBlogByID, GetBlogBySlug, GetBlogsByCategory,
	GetStudentClubs, GetCampusEvents, GetMemberships,
	GetAdvisors, GetAdvisorByID, CreateAdvisor, UpdateAdvisor, DeleteAdvisor,
	GetIndustryPartners, GetIndustryPartnerByID, CreateIndustryPartner, UpdateIndustryPartner, DeleteIndustryPartner,
	GetCareerPosts, GetCareerPostsWithApplicants, GetActiveCareerPosts, GetCareerPostByID,
	CreateCareerPost, UpdateCareerPost, DeleteCareerPost, ToggleCareerPostStatus,
	SubmitJobApplication, GetApplicants, UpdateApplicantStatus,
	GetHeroImages, AddHeroImage, UpdateHeroImage, DeleteHeroImage,
	GetContentByType, AddOrUpdateContent,
	GetStatistics, AddStatistic, UpdateStatistic, DeleteStatistic,
	GetCoreValues, AddCoreValue, UpdateCoreValue, DeleteCoreValue,
	GetCampusImages, AddCampusImage, UpdateCampusImage, DeleteCampusImage,
	GetLifeSections, AddLifeSection, UpdateLifeSection, DeleteLifeSection,
	GetStudentServices, AddStudentService, UpdateStudentService, DeleteStudentService,
	GetSportsFacilities, AddSportsFacility, UpdateSportsFacility, DeleteSportsFacility,
	GetLifeGallery, AddLifeGalleryImage, UpdateLifeGalleryImage, DeleteLifeGalleryImage,
	GetDownloads, GetDownloadByID, CreateDownload, UpdateDownload, DeleteDownload,
	GetDownloadCategories, DeleteDownloadCategory,
	GetFreeCourses, GetFreeCourseByID, CreateFreeCourse, UpdateFreeCourse, DeleteFreeCourse, ToggleFreeCourseStatus,
	HealthCheck,
}

// Endpoints returns every registered endpoint sorted by name
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(allEndpoints))
	copy(out, allEndpoints)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Registry resolves endpoints against the configured base URLs
type Registry struct {
	backendURL string
	apiBaseURL string
}

// NewRegistry creates a registry; empty arguments fall back to the defaults
func NewRegistry(backendURL, apiBaseURL string) *Registry {
	if backendURL == "" {
		backendURL = DefaultBackendURL
	}
	if apiBaseURL == "" {
		apiBaseURL = strings.TrimRight(backendURL, "/") + "/api/v1"
	}
	return &Registry{
		backendURL: strings.TrimRight(backendURL, "/"),
		apiBaseURL: strings.TrimRight(apiBaseURL, "/"),
	}
}

// BackendURL returns the backend root URL
func (r *Registry) BackendURL() string {
	return r.backendURL
}

// APIBaseURL returns the versioned API base URL
func (r *Registry) APIBaseURL() string {
	return r.apiBaseURL
}

// URL builds the absolute URL for e, filling placeholders in order
func (r *Registry) URL(e Endpoint, params ...string) (string, error) {
	path, err := fillPath(e, params)
	if err != nil {
		return "", err
	}
	if e.Root {
		return r.backendURL + path, nil
	}
	return r.apiBaseURL + path, nil
}

func fillPath(e Endpoint, params []string) (string, error) {
	var b strings.Builder
	rest := e.Path
	used := 0

	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			return "", fmt.Errorf("endpoint %s: unterminated placeholder in %q", e.Name, e.Path)
		}
		name := rest[open+1 : open+closing]

		if used >= len(params) || params[used] == "" {
			return "", fmt.Errorf("endpoint %s: %w: %s", e.Name, ErrMissingParam, name)
		}

		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(params[used]))
		used++
		rest = rest[open+closing+1:]
	}

	if used != len(params) {
		return "", fmt.Errorf("endpoint %s: expected %d parameters, got %d", e.Name, used, len(params))
	}

	return b.String(), nil
}
