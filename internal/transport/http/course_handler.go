package http

import (
	"net/http"
	"strconv"

	"lms-admin-service/internal/app"
	"lms-admin-service/internal/domain"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CourseHandler exposes the catalog and the course editor.
type CourseHandler struct {
	BaseHandler
	service *app.CourseService
}

func NewCourseHandler(service *app.CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		service:     service,
		BaseHandler: BaseHandler{Logger: logger},
	}
}

// RegisterRoutes registers all course routes.
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.ListCourses)
		r.Post("/", h.CreateCourse)
		r.Get("/kanban", h.Kanban)
		r.Get("/open", h.OpenCourses)

		r.Route("/{courseID}", func(r chi.Router) {
			r.Get("/", h.GetCourse)
			r.Patch("/", h.UpdateCourse)
			r.Post("/open", h.OpenCourse)
			r.Post("/close", h.CloseCourse)
			r.Post("/tags", h.AddTag)
			r.Delete("/tags/{tagID}", h.RemoveTag)
			r.Put("/published", h.SetPublished)
			r.Put("/access", h.SetAccessType)
			r.Put("/price", h.SetPrice)
			r.Post("/share", h.ShareLink)

			r.Route("/contents", func(r chi.Router) {
				r.Post("/", h.AddContent)
				r.Get("/{contentID}", h.ContentDraft)
				r.Put("/{contentID}", h.EditContent)
				r.Delete("/{contentID}", h.RemoveContent)
				r.Post("/{contentID}/attachments", h.AddAttachment)
				r.Delete("/{contentID}/attachments/{attachmentID}", h.RemoveAttachment)
			})

			r.Route("/quiz", func(r chi.Router) {
				r.Get("/", h.QuizState)
				r.Put("/rewards/{field}", h.SetReward)
				r.Get("/rewards/attempts/{attempt}", h.RewardForAttempt)
				r.Post("/questions", h.AddQuestion)
				r.Patch("/questions/{questionID}", h.UpdateQuestion)
				r.Delete("/questions/{questionID}", h.DeleteQuestion)
				r.Post("/questions/{questionID}/select", h.SelectQuestion)
				r.Post("/questions/{questionID}/options", h.AddOption)
				r.Patch("/questions/{questionID}/options/{optionID}", h.UpdateOption)
				r.Delete("/questions/{questionID}/options/{optionID}", h.RemoveOption)
			})
		})
	})
}

type createCourseRequest struct {
	Name string `json:"name"`
}

type tagRequest struct {
	Name string `json:"name"`
}

type publishRequest struct {
	Published bool `json:"published"`
}

type accessRequest struct {
	AccessType domain.AccessType `json:"accessType"`
}

type priceRequest struct {
	Price domain.Opt[*float64] `json:"price"`
}

type addContentRequest struct {
	Category domain.ContentCategory `json:"category"`
	domain.ContentDraft
}

type attachmentRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type rewardRequest struct {
	Value int `json:"value"`
}

// courseView adds the derived access pickers to a course.
type courseView struct {
	domain.Course
	Visibility domain.AccessType `json:"visibility"`
	AccessRule domain.AccessType `json:"accessRule"`
}

func viewOf(c domain.Course) courseView {
	return courseView{Course: c, Visibility: c.Visibility(), AccessRule: c.AccessRule()}
}

// ListCourses handles GET /courses?q=
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.ListCourses(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, courses)
}

// Kanban handles GET /courses/kanban?q=
func (h *CourseHandler) Kanban(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.Kanban(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, board)
}

// CreateCourse handles POST /courses
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req createCourseRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	c, err := h.service.CreateCourse(r.Context(), req.Name)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusCreated, viewOf(c))
}

func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCourse(r.Context(), chi.URLParam(r, "courseID"))
	h.respondCourse(w, r, c, err)
}

// UpdateCourse handles PATCH /courses/{courseID}; only the keys present in
// the body are changed, and "price": null clears the price.
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	var u domain.CourseUpdate
	if !h.decodeJSON(w, r, &u) {
		return
	}
	c, err := h.service.UpdateCourse(r.Context(), chi.URLParam(r, "courseID"), u)
	h.respondCourse(w, r, c, err)
}

func (h *CourseHandler) OpenCourse(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.OpenCourse(r.Context(), chi.URLParam(r, "courseID"))
	h.respondCourse(w, r, c, err)
}

func (h *CourseHandler) CloseCourse(w http.ResponseWriter, r *http.Request) {
	h.service.CloseCourse(r.Context(), chi.URLParam(r, "courseID"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *CourseHandler) AddTag(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	c, err := h.service.AddTag(r.Context(), chi.URLParam(r, "courseID"), req.Name)
	h.respondCourse(w, r, c, err)
}

// RemoveTag handles DELETE /courses/{courseID}/tags/{tagID}. With
// ?source=catalog the tag is removed from a catalog card and the course's
// updatedAt stays as it was.
func (h *CourseHandler) RemoveTag(w http.ResponseWriter, r *http.Request) {
	courseID, tagID := chi.URLParam(r, "courseID"), chi.URLParam(r, "tagID")
	var (
		c   domain.Course
		err error
	)
	if r.URL.Query().Get("source") == "catalog" {
		c, err = h.service.RemoveCatalogTag(r.Context(), courseID, tagID)
	} else {
		c, err = h.service.RemoveTag(r.Context(), courseID, tagID)
	}
	h.respondCourse(w, r, c, err)
}

func (h *CourseHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	c, err := h.service.SetPublished(r.Context(), chi.URLParam(r, "courseID"), req.Published)
	h.respondCourse(w, r, c, err)
}

func (h *CourseHandler) SetAccessType(w http.ResponseWriter, r *http.Request) {
	var req accessRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	c, err := h.service.SetAccessType(r.Context(), chi.URLParam(r, "courseID"), req.AccessType)
	h.respondCourse(w, r, c, err)
}

func (h *CourseHandler) SetPrice(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	price, ok := req.Price.Get()
	if !ok {
		h.RespondError(w, http.StatusBadRequest, "price is required")
		return
	}
	c, err := h.service.SetPrice(r.Context(), chi.URLParam(r, "courseID"), price)
	h.respondCourse(w, r, c, err)
}

func (h *CourseHandler) ShareLink(w http.ResponseWriter, r *http.Request) {
	url, err := h.service.ShareLink(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, map[string]string{"url": url})
}

// AddContent handles POST /courses/{courseID}/contents
func (h *CourseHandler) AddContent(w http.ResponseWriter, r *http.Request) {
	var req addContentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	content, c, err := h.service.AddContent(r.Context(), chi.URLParam(r, "courseID"), req.Category, req.ContentDraft)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusCreated, map[string]any{"content": content, "course": viewOf(c)})
}

// ContentDraft handles GET /courses/{courseID}/contents/{contentID}.
func (h *CourseHandler) ContentDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.service.ContentDraft(r.Context(), chi.URLParam(r, "courseID"), chi.URLParam(r, "contentID"))
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, draft)
}

func (h *CourseHandler) EditContent(w http.ResponseWriter, r *http.Request) {
	var draft domain.ContentDraft
	if !h.decodeJSON(w, r, &draft) {
		return
	}
	c, err := h.service.EditContent(r.Context(), chi.URLParam(r, "courseID"), chi.URLParam(r, "contentID"), draft)
	h.respondCourse(w, r, c, err)
}

func (h *CourseHandler) RemoveContent(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.RemoveContent(r.Context(), chi.URLParam(r, "courseID"), chi.URLParam(r, "contentID"))
	h.respondCourse(w, r, c, err)
}

func (h *CourseHandler) AddAttachment(w http.ResponseWriter, r *http.Request) {
	var req attachmentRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	c, err := h.service.AddAttachment(r.Context(), chi.URLParam(r, "courseID"), chi.URLParam(r, "contentID"), req.Name, req.URL)
	h.respondCourse(w, r, c, err)
}

func (h *CourseHandler) RemoveAttachment(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.RemoveAttachment(r.Context(),
		chi.URLParam(r, "courseID"), chi.URLParam(r, "contentID"), chi.URLParam(r, "attachmentID"))
	h.respondCourse(w, r, c, err)
}

func (h *CourseHandler) QuizState(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.QuizState(r.Context(), chi.URLParam(r, "courseID"))
	h.respondQuiz(w, r, state, err)
}

func (h *CourseHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.AddQuestion(r.Context(), chi.URLParam(r, "courseID"))
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusCreated, state)
}

func (h *CourseHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var u domain.QuestionUpdate
	if !h.decodeJSON(w, r, &u) {
		return
	}
	state, err := h.service.UpdateQuestion(r.Context(), chi.URLParam(r, "courseID"), chi.URLParam(r, "questionID"), u)
	h.respondQuiz(w, r, state, err)
}

func (h *CourseHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.DeleteQuestion(r.Context(), chi.URLParam(r, "courseID"), chi.URLParam(r, "questionID"))
	h.respondQuiz(w, r, state, err)
}

func (h *CourseHandler) SelectQuestion(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.SelectQuestion(r.Context(), chi.URLParam(r, "courseID"), chi.URLParam(r, "questionID"))
	h.respondQuiz(w, r, state, err)
}

func (h *CourseHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.AddOption(r.Context(), chi.URLParam(r, "courseID"), chi.URLParam(r, "questionID"))
	h.respondQuiz(w, r, state, err)
}

func (h *CourseHandler) UpdateOption(w http.ResponseWriter, r *http.Request) {
	var u domain.OptionUpdate
	if !h.decodeJSON(w, r, &u) {
		return
	}
	state, err := h.service.UpdateOption(r.Context(),
		chi.URLParam(r, "courseID"), chi.URLParam(r, "questionID"), chi.URLParam(r, "optionID"), u)
	h.respondQuiz(w, r, state, err)
}

func (h *CourseHandler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.RemoveOption(r.Context(),
		chi.URLParam(r, "courseID"), chi.URLParam(r, "questionID"), chi.URLParam(r, "optionID"))
	h.respondQuiz(w, r, state, err)
}

func (h *CourseHandler) SetReward(w http.ResponseWriter, r *http.Request) {
	var req rewardRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	field := domain.RewardField(chi.URLParam(r, "field"))
	state, err := h.service.SetReward(r.Context(), chi.URLParam(r, "courseID"), field, req.Value)
	h.respondQuiz(w, r, state, err)
}

func (h *CourseHandler) RewardForAttempt(w http.ResponseWriter, r *http.Request) {
	attempt, err := strconv.Atoi(chi.URLParam(r, "attempt"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "attempt must be a number")
		return
	}
	points, err := h.service.RewardForAttempt(r.Context(), chi.URLParam(r, "courseID"), attempt)
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, map[string]int{"attempt": attempt, "points": points})
}

// OpenCourses handles GET /courses/open
func (h *CourseHandler) OpenCourses(w http.ResponseWriter, r *http.Request) {
	ids, err := h.service.OpenCourses(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, map[string][]string{"courseIds": ids})
}

func (h *CourseHandler) respondCourse(w http.ResponseWriter, r *http.Request, c domain.Course, err error) {
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, viewOf(c))
}

func (h *CourseHandler) respondQuiz(w http.ResponseWriter, r *http.Request, state app.QuizState, err error) {
	if err != nil {
		h.RespondServiceError(w, r, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, state)
}
