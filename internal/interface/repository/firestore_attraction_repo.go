package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/api/googleapi"

	"departly/internal/domain/entity"
	"departly/pkg/logger"
)

// FirestoreBaseURL is the production REST endpoint.
const FirestoreBaseURL = "https://firestore.googleapis.com/v1"

// FirestoreAttractionRepository reads the knowledge base over the Firestore
// REST API. The hand-rolled runQuery call keeps the whole round trip on one
// plain HTTP request, so a bad credential surfaces as a request error
// instead of a hang deep inside a streaming client.
type FirestoreAttractionRepository struct {
	client     *http.Client
	baseURL    string
	projectID  string
	collection string
	logger     logger.Logger
}

// NewFirestoreAttractionRepository creates the REST adapter. client must
// already carry Firestore credentials; see credentials.ServiceCredential.
func NewFirestoreAttractionRepository(client *http.Client, baseURL, projectID, collection string, logger logger.Logger) *FirestoreAttractionRepository {
	return &FirestoreAttractionRepository{
		client:     client,
		baseURL:    baseURL,
		projectID:  projectID,
		collection: collection,
		logger:     logger,
	}
}

// Wire schema for documents:runQuery. Only the shapes this adapter sends
// and reads are modeled.
type runQueryRequest struct {
	StructuredQuery structuredQuery `json:"structuredQuery"`
}

type structuredQuery struct {
	From  []collectionSelector `json:"from"`
	Where *queryFilter         `json:"where,omitempty"`
	Limit int64                `json:"limit,omitempty"`
}

type collectionSelector struct {
	CollectionID string `json:"collectionId"`
}

type queryFilter struct {
	FieldFilter fieldFilter `json:"fieldFilter"`
}

type fieldFilter struct {
	Field fieldReference `json:"field"`
	Op    string         `json:"op"`
	Value firestoreValue `json:"value"`
}

type fieldReference struct {
	FieldPath string `json:"fieldPath"`
}

// firestoreValue is one typed Firestore value. integerValue arrives as a
// decimal string; the accessors coerce across types because the upload
// pipeline is not strict about them.
type firestoreValue struct {
	StringValue  *string  `json:"stringValue,omitempty"`
	IntegerValue *string  `json:"integerValue,omitempty"`
	DoubleValue  *float64 `json:"doubleValue,omitempty"`
	BooleanValue *bool    `json:"booleanValue,omitempty"`
}

func (v firestoreValue) text() string {
	if v.StringValue != nil {
		return *v.StringValue
	}
	if v.IntegerValue != nil {
		return *v.IntegerValue
	}
	if v.DoubleValue != nil {
		return strconv.FormatFloat(*v.DoubleValue, 'f', -1, 64)
	}
	return ""
}

func (v firestoreValue) integer() int64 {
	if v.IntegerValue != nil {
		if n, err := strconv.ParseInt(*v.IntegerValue, 10, 64); err == nil {
			return n
		}
	}
	if v.DoubleValue != nil {
		return int64(*v.DoubleValue)
	}
	if v.StringValue != nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(*v.StringValue), 64); err == nil {
			return int64(f)
		}
	}
	return 0
}

func (v firestoreValue) float() float64 {
	if v.DoubleValue != nil {
		return *v.DoubleValue
	}
	if v.IntegerValue != nil {
		if n, err := strconv.ParseInt(*v.IntegerValue, 10, 64); err == nil {
			return float64(n)
		}
	}
	if v.StringValue != nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(*v.StringValue), 64); err == nil {
			return f
		}
	}
	return 0
}

func (v firestoreValue) typeLabel() string {
	switch {
	case v.StringValue != nil:
		return "stringValue"
	case v.IntegerValue != nil:
		return "integerValue"
	case v.DoubleValue != nil:
		return "doubleValue"
	case v.BooleanValue != nil:
		return "booleanValue"
	}
	return "unset"
}

type runQueryResult struct {
	Document *firestoreDocument `json:"document,omitempty"`
	ReadTime string             `json:"readTime,omitempty"`
}

type firestoreDocument struct {
	Name   string                    `json:"name"`
	Fields map[string]firestoreValue `json:"fields"`
}

// FindByCity returns up to limit attractions whose City field equals city.
func (r *FirestoreAttractionRepository) FindByCity(ctx context.Context, city string, limit int64) ([]entity.Attraction, error) {
	query := runQueryRequest{
		StructuredQuery: structuredQuery{
			From: []collectionSelector{{CollectionID: r.collection}},
			Where: &queryFilter{
				FieldFilter: fieldFilter{
					Field: fieldReference{FieldPath: "City"},
					Op:    "EQUAL",
					Value: firestoreValue{StringValue: &city},
				},
			},
			Limit: limit,
		},
	}

	results, err := r.runQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	attractions := make([]entity.Attraction, 0, len(results))
	for _, res := range results {
		if res.Document == nil {
			continue
		}
		attractions = append(attractions, docToAttraction(res.Document.Fields))
	}
	return attractions, nil
}

// FindAny returns one arbitrary document, or nil when the collection is
// empty.
func (r *FirestoreAttractionRepository) FindAny(ctx context.Context) (*entity.Attraction, error) {
	doc, err := r.sampleDocument(ctx)
	if err != nil || doc == nil {
		return nil, err
	}
	attraction := docToAttraction(doc.Fields)
	return &attraction, nil
}

// SampleFields reports the field names and wire types of one arbitrary
// document. The probe uses it to diagnose column-name drift between the
// uploaded dataset and the query schema.
func (r *FirestoreAttractionRepository) SampleFields(ctx context.Context) (map[string]string, error) {
	doc, err := r.sampleDocument(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return map[string]string{}, nil
	}
	fields := make(map[string]string, len(doc.Fields))
	for name, value := range doc.Fields {
		fields[name] = value.typeLabel()
	}
	return fields, nil
}

func (r *FirestoreAttractionRepository) sampleDocument(ctx context.Context) (*firestoreDocument, error) {
	query := runQueryRequest{
		StructuredQuery: structuredQuery{
			From:  []collectionSelector{{CollectionID: r.collection}},
			Limit: 1,
		},
	}

	results, err := r.runQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	for _, res := range results {
		if res.Document != nil {
			return res.Document, nil
		}
	}
	return nil, nil
}

func (r *FirestoreAttractionRepository) runQuery(ctx context.Context, query runQueryRequest) ([]runQueryResult, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	url := fmt.Sprintf("%s/projects/%s/databases/(default)/documents:runQuery", r.baseURL, r.projectID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	r.logger.Debug("Running knowledge query", "collection", r.collection, "project", r.projectID)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach firestore: %w", err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("firestore query failed: %w", err)
	}

	var results []runQueryResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}
	return results, nil
}

func docToAttraction(fields map[string]firestoreValue) entity.Attraction {
	return entity.Attraction{
		Name:         fields["Name"].text(),
		Type:         fields["Type"].text(),
		Significance: fields["Significance"].text(),
		City:         fields["City"].text(),
		EntranceFee:  fields["Entrance Fee in INR"].integer(),
		VisitHours:   fields["time needed to visit in hrs"].float(),
		BestTime:     fields["Best Time to visit"].text(),
		Rating:       fields["Google review rating"].float(),
	}
}
