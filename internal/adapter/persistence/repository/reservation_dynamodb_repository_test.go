package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"suprimentos/internal/domain/entities"
	"suprimentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func activeReservation() entities.Reservation {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	return entities.Reservation{
		ID: "r1", RequisitionID: "req-1", BudgetID: "CC##TI#2026", CostCenter: "CC",
		Amount: dec("300"), Status: entities.ReservationStatusAtiva, CreatedAt: now, UpdatedAt: now,
	}
}

func TestReservationDynamoRepository_Create(t *testing.T) {
	t.Run("writes reservation and budget in one transaction", func(t *testing.T) {
		ddb := &fakeDynamo{transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			if len(in.TransactItems) != 2 {
				t.Fatalf("expected 2 operations, got %d", len(in.TransactItems))
			}
			put := in.TransactItems[txReservationOp].Put
			if put == nil || aws.ToString(put.TableName) != "reservas" {
				t.Fatalf("unexpected reservation op %+v", in.TransactItems[txReservationOp])
			}
			upd := in.TransactItems[txBudgetOp].Update
			if upd == nil || aws.ToString(upd.TableName) != "orcamentos" {
				t.Fatalf("unexpected budget op %+v", in.TransactItems[txBudgetOp])
			}
			if !strings.Contains(aws.ToString(upd.ConditionExpression), "#available >= :amount") {
				t.Fatalf("budget op must guard available, got %q", aws.ToString(upd.ConditionExpression))
			}
			if numberAttr(upd.ExpressionAttributeValues[":amount"]) != "300" {
				t.Fatalf("unexpected amount %#v", upd.ExpressionAttributeValues[":amount"])
			}
			return &dynamodb.TransactWriteItemsOutput{}, nil
		}}
		repo := NewReservationDynamoRepository(ddb, "reservas", "orcamentos")

		got, err := repo.Create(context.Background(), activeReservation())
		if err != nil || got.ID != "r1" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})

	cases := []struct {
		name  string
		codes []string
		want  error
	}{
		{"budget cannot hold amount", []string{"None", "ConditionalCheckFailed"}, interfaces.ErrInsufficientAvailable},
		{"duplicate reservation", []string{"ConditionalCheckFailed", "None"}, interfaces.ErrConditionFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ddb := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				return nil, txCancelled(tc.codes...)
			}}
			_, err := NewReservationDynamoRepository(ddb, "", "").Create(context.Background(), activeReservation())
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("throttled")
		ddb := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, boom
		}}
		if _, err := NewReservationDynamoRepository(ddb, "", "").Create(context.Background(), activeReservation()); !errors.Is(err, boom) {
			t.Fatalf("expected throttled error, got %v", err)
		}
	})
}

func TestReservationDynamoRepository_Cancel(t *testing.T) {
	at := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

	t.Run("releases reserved amount", func(t *testing.T) {
		ddb := &fakeDynamo{transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			res := in.TransactItems[txReservationOp].Update
			if aws.ToString(res.ConditionExpression) != "#status = :active" {
				t.Fatalf("unexpected condition %q", aws.ToString(res.ConditionExpression))
			}
			budget := in.TransactItems[txBudgetOp].Update
			if !strings.Contains(aws.ToString(budget.UpdateExpression), "#available = #available + :amount") {
				t.Fatalf("unexpected budget update %q", aws.ToString(budget.UpdateExpression))
			}
			return &dynamodb.TransactWriteItemsOutput{}, nil
		}}

		got, err := NewReservationDynamoRepository(ddb, "", "").Cancel(context.Background(), activeReservation(), "compra cancelada", at)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Status != entities.ReservationStatusCancelada || got.CancelReason != "compra cancelada" || got.CancelledAt == nil || !got.CancelledAt.Equal(at) {
			t.Fatalf("unexpected reservation %+v", got)
		}
	})

	t.Run("not active", func(t *testing.T) {
		ddb := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, txCancelled("ConditionalCheckFailed", "None")
		}}
		_, err := NewReservationDynamoRepository(ddb, "", "").Cancel(context.Background(), activeReservation(), "x", at)
		if !errors.Is(err, interfaces.ErrReservationNotActive) {
			t.Fatalf("expected ErrReservationNotActive, got %v", err)
		}
	})
}

func TestReservationDynamoRepository_Confirm(t *testing.T) {
	at := time.Date(2026, 4, 3, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		realized  string
		wantDelta string
	}{
		{"realized below reserved returns the difference", "250", "50"},
		{"overrun takes from available", "320", "-20"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ddb := &fakeDynamo{transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
				budget := in.TransactItems[txBudgetOp].Update
				if got := numberAttr(budget.ExpressionAttributeValues[":delta"]); got != tc.wantDelta {
					t.Fatalf("expected delta %s, got %s", tc.wantDelta, got)
				}
				if got := numberAttr(budget.ExpressionAttributeValues[":realized"]); got != tc.realized {
					t.Fatalf("expected realized %s, got %s", tc.realized, got)
				}
				if budget.ExpressionAttributeNames["#used"] != "used" {
					t.Fatalf("expected #used name, got %v", budget.ExpressionAttributeNames)
				}
				return &dynamodb.TransactWriteItemsOutput{}, nil
			}}

			got, err := NewReservationDynamoRepository(ddb, "", "").Confirm(context.Background(), activeReservation(), dec(tc.realized), at)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got.Status != entities.ReservationStatusConfirmada || got.RealizedAmount == nil || !got.RealizedAmount.Equal(dec(tc.realized)) {
				t.Fatalf("unexpected reservation %+v", got)
			}
		})
	}
}

func TestReservationItem_RoundTrip(t *testing.T) {
	r := activeReservation()
	realized := dec("280.75")
	confirmedAt := r.CreatedAt.Add(time.Hour)
	r.Status = entities.ReservationStatusConfirmada
	r.RealizedAmount = &realized
	r.ConfirmedAt = &confirmedAt

	av, err := attributevalue.MarshalMap(toReservationItem(r))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["cancelled_at"]; ok {
		t.Fatalf("expected cancelled_at omitted")
	}
	if _, ok := av["realized_amount"].(*types.AttributeValueMemberN); !ok {
		t.Fatalf("expected realized_amount as number, got %#v", av["realized_amount"])
	}

	var it reservationItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromReservationItem(it)
	if got.RealizedAmount == nil || !got.RealizedAmount.Equal(realized) || got.CancelledAt != nil {
		t.Fatalf("unexpected reservation %+v", got)
	}
	if got.ConfirmedAt == nil || !got.ConfirmedAt.Equal(confirmedAt) {
		t.Fatalf("unexpected confirmed_at %v", got.ConfirmedAt)
	}
}
