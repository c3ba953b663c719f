package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"suprimentos/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestOrderPaymentDynamoRepository_CreateAndList(t *testing.T) {
	p := entities.OrderPayment{
		ID: "mp-1", OrderID: "o1", ReservationID: "r1", Amount: dec("1500.50"),
		Date: time.Date(2026, 5, 5, 10, 0, 0, 0, time.UTC), Status: entities.PaymentStatusAprovado,
		ProviderPayloadRaw: json.RawMessage(`{"id":"mp-1"}`),
		ProviderPayload:    map[string]interface{}{"id": "mp-1"},
	}

	var stored map[string]types.AttributeValue
	ddb := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			if aws.ToString(in.IndexName) != orderPaymentsOrderIDIndex {
				t.Fatalf("unexpected index %q", aws.ToString(in.IndexName))
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{stored}}, nil
		},
	}
	repo := NewOrderPaymentDynamoRepository(ddb, "")

	if _, err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if numberAttr(stored["amount"]) != "1500.5" {
		t.Fatalf("expected amount stored as number, got %#v", stored["amount"])
	}

	got, err := repo.ListByOrderID(context.Background(), "o1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != "mp-1" || got[0].Status != entities.PaymentStatusAprovado || !got[0].Amount.Equal(p.Amount) {
		t.Fatalf("unexpected payments %+v", got)
	}
	if string(got[0].ProviderPayloadRaw) != `{"id":"mp-1"}` || got[0].ProviderPayload["id"] != "mp-1" {
		t.Fatalf("unexpected payload %+v", got[0])
	}

	var it orderPaymentItem
	if err := attributevalue.UnmarshalMap(stored, &it); err != nil || it.ReservationID != "r1" {
		t.Fatalf("unexpected stored item %+v err=%v", it, err)
	}
}
