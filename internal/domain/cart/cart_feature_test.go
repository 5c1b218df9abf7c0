package cart_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/domain/cart"
)

type cartTestContext struct {
	catalog map[string]cart.Product
	cart    cart.Cart
	err     error
}

func (c *cartTestContext) reset() {
	c.catalog = map[string]cart.Product{}
	c.cart = cart.New()
	c.err = nil
}

func (c *cartTestContext) theCatalogHasAProductPriced(id string, price int) error {
	c.catalog[id] = cart.Product{ID: id, Name: "Product " + id, Price: decimal.NewFromInt(int64(price))}
	return nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.cart = cart.New()
	return nil
}

func (c *cartTestContext) iAddOf(qty int, id string) error {
	p, ok := c.catalog[id]
	if !ok {
		return fmt.Errorf("unknown product %q", id)
	}
	c.cart, c.err = c.cart.Add(p, qty)
	return nil
}

func (c *cartTestContext) iRemove(id string) error {
	c.cart = c.cart.Remove(id)
	c.err = nil
	return nil
}

func (c *cartTestContext) iSetTheQuantityOfTo(id string, qty int) error {
	c.cart, c.err = c.cart.UpdateQuantity(id, qty)
	return nil
}

func (c *cartTestContext) theOperationSucceeds() error {
	if c.err != nil {
		return fmt.Errorf("expected success, got %v", c.err)
	}
	return nil
}

func (c *cartTestContext) theOperationFailsWith(msg string) error {
	if c.err == nil {
		return errors.New("expected failure, got success")
	}
	if c.err.Error() != msg {
		return fmt.Errorf("expected %q, got %q", msg, c.err.Error())
	}
	return nil
}

func (c *cartTestContext) theCartHoldsOf(qty int, id string) error {
	item, ok := c.cart.Get(id)
	if !ok {
		return fmt.Errorf("product %q not in cart", id)
	}
	if item.Quantity != qty {
		return fmt.Errorf("expected quantity %d, got %d", qty, item.Quantity)
	}
	return nil
}

func (c *cartTestContext) theCartCountIs(n int) error {
	if got := c.cart.Count(); got != n {
		return fmt.Errorf("expected count %d, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theCartTotalIs(total int) error {
	if got := c.cart.Total(); !got.Equal(decimal.NewFromInt(int64(total))) {
		return fmt.Errorf("expected total %d, got %s", total, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^the catalog has a product "([^"]*)" priced (\d+)$`, tc.theCatalogHasAProductPriced)
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)

	ctx.Step(`^I add (\d+) of "([^"]*)"$`, tc.iAddOf)
	ctx.Step(`^I remove "([^"]*)"$`, tc.iRemove)
	ctx.Step(`^I set the quantity of "([^"]*)" to (-?\d+)$`, tc.iSetTheQuantityOfTo)

	ctx.Step(`^the operation succeeds$`, tc.theOperationSucceeds)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^the cart holds (\d+) of "([^"]*)"$`, tc.theCartHoldsOf)
	ctx.Step(`^the cart count is (\d+)$`, tc.theCartCountIs)
	ctx.Step(`^the cart total is (\d+)$`, tc.theCartTotalIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
