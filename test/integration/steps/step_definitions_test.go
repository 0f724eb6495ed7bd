package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/paisa-buddy/backend/config"
	"github.com/paisa-buddy/backend/internal/domain/valueobject"
	"github.com/paisa-buddy/backend/internal/infra/dependency"
	"github.com/paisa-buddy/backend/internal/integration/adapters"
	"github.com/paisa-buddy/backend/internal/integration/persistence/model"
	"github.com/paisa-buddy/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	client        *http.Client
	headers       map[string]string
	response      *response
	db            *mock.Db
	redis         *redis.Client
	timeMock      *mock.Time
	emailAPI      *mock.ApiMock
	accessToken   string
	currentUserID uuid.UUID
	users         map[string]uuid.UUID
	lastID        int64
}

type response struct {
	status int
	body   any
}

var (
	serverInit sync.Once
	serverURL  string
	sharedTime = mock.NewTime()
	emailAPI   = mock.NewApiServer()
)

func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: sharedTime,
		emailAPI: emailAPI,
		redis:    mock.NewRedis(),
		db: mock.NewDb(map[string]any{
			"transactions": &model.TransactionModel{},
			"budgets":      &model.BudgetModel{},
			"goals":        &model.GoalModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)
	ctx.Step(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Step(`^I am not logged in$`, test.iAmNotLoggedIn)

	// Data setup steps
	ctx.Step(`^I have the following transactions:$`, test.iHaveTheFollowingTransactions)
	ctx.Step(`^I have a "([^"]*)" budget of (\d+) for "([^"]*)"$`, test.iHaveABudgetOf)
	ctx.Step(`^I have a goal "([^"]*)" with (\d+) saved of (\d+)$`, test.iHaveAGoal)
	ctx.Step(`^the email API responds with status (\d+)$`, test.theEmailAPIRespondsWithStatus)

	// Header steps
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Side effect assertion steps
	ctx.Step(`^(\d+) alert emails? should have been sent$`, test.alertEmailsShouldHaveBeenSent)
	ctx.Step(`^the last alert email should be sent to "([^"]*)" with subject "([^"]*)"$`, test.theLastAlertEmailShouldBe)
	ctx.Step(`^the alert state of the current user should be stored in Redis$`, test.theAlertStateShouldBeStoredInRedis)
	ctx.Step(`^the alert state of the current user should not be stored in Redis$`, test.theAlertStateShouldNotBeStoredInRedis)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.users = make(map[string]uuid.UUID)
	t.lastID = 0

	t.timeMock.Reset()
	t.emailAPI.ClearResponses("", "")
	t.emailAPI.SetResponse(-1, http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "re_mock"})

	if err := mock.ClearRedis(t.redis); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		gin.SetMode(gin.TestMode)
		emailAPI.Start()

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT = config.JWTConfig{Secret: testJWTSecret}
		cfg.Gemini.APIKey = ""
		cfg.Email.ResendAPIKey = "re_test"
		cfg.Email.ResendURL = emailAPI.GetUrl()
		cfg.Email.MaxAttempts = 1

		injector, err := dependency.NewInjector(cfg, t.db.DbConn, t.redis, sharedTime.Now)
		if err != nil {
			panic(fmt.Sprintf("failed to wire dependencies: %v", err))
		}

		server := httptest.NewServer(injector.Router.Setup(injector.RouterOptions()))
		serverURL = server.URL
	})
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()

	resp, err := t.client.Get(serverURL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) theCurrentDateIs(date string) error {
	parsed, err := time.Parse(valueobject.DateLayout, date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(parsed.Add(12 * time.Hour))
	return nil
}

// iAmLoggedInAs signs an access token for the user behind email, creating
// the user ID on first use.
func (t *testContext) iAmLoggedInAs(email string) error {
	userID, ok := t.users[email]
	if !ok {
		userID = uuid.New()
		t.users[email] = userID
	}
	t.currentUserID = userID

	claims := adapters.CustomClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmNotLoggedIn() error {
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	return nil
}

func (t *testContext) iHaveTheFollowingTransactions(table *godog.Table) error {
	if t.currentUserID == uuid.Nil {
		return errors.New("no user is logged in")
	}
	if len(table.Rows) < 2 {
		return errors.New("the transactions table needs a header and at least one row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	for _, row := range table.Rows[1:] {
		values := map[string]string{}
		for i, cell := range row.Cells {
			values[header[i]] = cell.Value
		}

		amount, err := decimal.NewFromString(values["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", values["amount"], err)
		}

		txType := values["type"]
		if txType == "" {
			txType = "Needs"
		}

		now := time.Now().UTC()
		if err := t.db.DbConn.Create(&model.TransactionModel{
			UserID:    t.currentUserID,
			Name:      values["name"],
			Category:  values["category"],
			Amount:    amount,
			Date:      values["date"],
			Type:      txType,
			CreatedAt: now,
			UpdatedAt: now,
		}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (t *testContext) iHaveABudgetOf(period string, limit int, category string) error {
	now := time.Now().UTC()
	budget := &model.BudgetModel{
		UserID:    t.currentUserID,
		Category:  category,
		Limit:     decimal.NewFromInt(int64(limit)),
		Period:    period,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(budget).Error; err != nil {
		return err
	}
	t.lastID = budget.ID
	return nil
}

func (t *testContext) iHaveAGoal(name string, current, target int) error {
	now := time.Now().UTC()
	goal := &model.GoalModel{
		UserID:        t.currentUserID,
		Name:          name,
		Type:          "Other",
		Current:       decimal.NewFromInt(int64(current)),
		Target:        decimal.NewFromInt(int64(target)),
		MonthlyTarget: decimal.Zero,
		Color:         "bg-muted",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := t.db.DbConn.Create(goal).Error; err != nil {
		return err
	}
	t.lastID = goal.ID
	return nil
}

func (t *testContext) theEmailAPIRespondsWithStatus(status int) error {
	t.emailAPI.SetResponse(-1, http.MethodPost, "/emails", status, map[string]any{
		"statusCode": status,
		"name":       "application_error",
		"message":    "mocked failure",
	})
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{last_id}}", strconv.FormatInt(t.lastID, 10))
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, serverURL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture created IDs for later {{last_id}} placeholders
	if id, ok := responseBody["id"].(float64); ok {
		t.lastID = int64(id)
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) responseObject() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		if expectedValue == "null" {
			return nil
		}
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}

	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d: %v", field, count, len(items), items)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.theDbShouldContainObjectsInWithTheValues(quantity, table, &godog.DocString{Content: "{}"})
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	// Soft-deleted rows are excluded, matching what the API can see.
	query := t.db.DbConn.Where("user_id = ?", t.currentUserID)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) alertEmailsShouldHaveBeenSent(count int) error {
	sent := t.emailAPI.Requests(http.MethodPost, "/emails")
	if len(sent) != count {
		return fmt.Errorf("expected %d alert emails, got %d", count, len(sent))
	}
	return nil
}

func (t *testContext) theLastAlertEmailShouldBe(recipient, subject string) error {
	sent := t.emailAPI.Requests(http.MethodPost, "/emails")
	if len(sent) == 0 {
		return errors.New("no alert email was sent")
	}
	last := sent[len(sent)-1].Body

	to, _ := last["to"].([]any)
	if len(to) != 1 || to[0] != recipient {
		return fmt.Errorf("expected email to %q, got %v", recipient, last["to"])
	}
	if last["subject"] != subject {
		return fmt.Errorf("expected subject %q, got %v", subject, last["subject"])
	}
	return nil
}

func (t *testContext) theAlertStateShouldBeStoredInRedis() error {
	key := "paisa:budget-alerts:" + t.currentUserID.String()
	keys, err := mock.RedisKeys(key)
	if err != nil {
		return err
	}
	if len(keys) != 1 {
		return fmt.Errorf("expected alert state under %s, found %v", key, keys)
	}
	if ttl := mock.RedisTTL(key); ttl <= 0 {
		return fmt.Errorf("expected alert state under %s to expire, ttl is %s", key, ttl)
	}
	return nil
}

func (t *testContext) theAlertStateShouldNotBeStoredInRedis() error {
	keys, err := mock.RedisKeys("paisa:budget-alerts:" + t.currentUserID.String())
	if err != nil {
		return err
	}
	if len(keys) != 0 {
		return fmt.Errorf("expected no alert state, found %v", keys)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
